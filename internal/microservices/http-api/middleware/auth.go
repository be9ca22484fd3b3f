package middleware

import (
	"slices"
	"strings"

	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/service"
	"creatorhub/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests
// It checks for the presence and validity of a JWT token in the Authorization header
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, apperrors.Unauthorized("missing authorization header"))
			return
		}

		// format: "Bearer <token>"
		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			abortWith(c, apperrors.Unauthorized("invalid authorization header format"))
			return
		}

		claims, ok := authService.VerifyToken(strings.TrimSpace(tokenString))
		if !ok {
			abortWith(c, apperrors.Unauthorized("invalid or expired token"))
			return
		}

		// Set user info in context for handlers to use
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

// RequireRole lets the request through only when the authenticated role is one of roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFrom(c)
		if !ok {
			abortWith(c, apperrors.Unauthorized("authentication required"))
			return
		}
		if !slices.Contains(roles, role) {
			abortWith(c, apperrors.Forbidden("this action requires the "+joinRoles(roles)+" role"))
			return
		}
		c.Next()
	}
}

func joinRoles(roles []models.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return strings.Join(names, " or ")
}

// UserIDFrom returns the authenticated user id, empty when unauthenticated.
func UserIDFrom(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func RoleFrom(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(ctxRole)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok && role.Valid()
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
