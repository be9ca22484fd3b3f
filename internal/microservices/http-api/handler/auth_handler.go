package handler

import (
	"net/http"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/middleware"
	"creatorhub/internal/microservices/http-api/service"
	"creatorhub/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes mounts /auth. limit runs before every auth route, requireAuth guards /me.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc, limit ...gin.HandlerFunc) {
	auth := router.Group("/auth", limit...)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", requireAuth, h.Me)
	}
}

// Register creates an account and signs the caller in.
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		_ = c.Error(apperrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), middleware.UserIDFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}
