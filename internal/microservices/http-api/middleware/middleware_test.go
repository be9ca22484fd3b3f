package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/service"
	"creatorhub/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockAuthService mocks the AuthService interface; only VerifyToken is used here.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in dto.RegisterInput) (*dto.AuthResponse, error) {
	args := m.Called(ctx, in)
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	return nil, args.Error(1)
}

func (m *MockAuthService) VerifyToken(token string) (*service.Claims, bool) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*service.Claims), args.Bool(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	return nil, args.Error(1)
}

func setupRouter(authService service.AuthService, roles ...models.Role) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler())
	protected := router.Group("/", AuthMiddleware(authService))
	if len(roles) > 0 {
		protected.Use(RequireRole(roles...))
	}
	protected.GET("/whoami", func(c *gin.Context) {
		role, _ := RoleFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": UserIDFrom(c), "role": role})
	})
	return router
}

func doRequest(router http.Handler, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("VerifyToken", "good").Return(&service.Claims{UserID: "u1", Role: models.RoleCreator}, true)
	authService.On("VerifyToken", "bad").Return(nil, false)
	router := setupRouter(authService)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, `{"error":"missing authorization header"}`},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, `{"error":"invalid authorization header format"}`},
		{"no token", "Bearer ", http.StatusUnauthorized, `{"error":"invalid authorization header format"}`},
		{"invalid token", "Bearer bad", http.StatusUnauthorized, `{"error":"invalid or expired token"}`},
		{"valid token", "Bearer good", http.StatusOK, `{"id":"u1","role":"creator"}`},
		{"lowercase scheme", "bearer good", http.StatusOK, `{"id":"u1","role":"creator"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestAuthMiddleware_SetsOnlyIdentityKeys(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("VerifyToken", "good").
		Return(&service.Claims{UserID: "u1", Email: "ana@example.com", Role: models.RoleBrand}, true)

	var keys []string
	router := gin.New()
	router.GET("/whoami", AuthMiddleware(authService), func(c *gin.Context) {
		for k := range c.Keys {
			keys = append(keys, fmt.Sprint(k))
		}
		c.Status(http.StatusNoContent)
	})

	w := doRequest(router, "Bearer good")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.ElementsMatch(t, []string{"userID", "role"}, keys)
}

func TestRequireRole(t *testing.T) {
	authService := new(MockAuthService)
	authService.On("VerifyToken", "creator").Return(&service.Claims{UserID: "c1", Role: models.RoleCreator}, true)
	authService.On("VerifyToken", "brand").Return(&service.Claims{UserID: "b1", Role: models.RoleBrand}, true)
	router := setupRouter(authService, models.RoleBrand)

	w := doRequest(router, "Bearer brand")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "Bearer creator")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"this action requires the brand role"}`, w.Body.String())
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/tagged", func(c *gin.Context) { _ = c.Error(apperrors.Conflict("email already registered")) })
	router.GET("/untagged", func(c *gin.Context) { _ = c.Error(errors.New("pq: connection reset")) })
	router.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
		_ = c.Error(errors.New("late"))
	})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/tagged", http.StatusConflict, `{"error":"email already registered"}`},
		{"/untagged", http.StatusInternalServerError, `{"error":"internal server error"}`},
		{"/written", http.StatusAccepted, `{"ok":true}`},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, tt.status, w.Code, tt.path)
		assert.JSONEq(t, tt.body, w.Body.String(), tt.path)
		assert.NotContains(t, w.Body.String(), "pq:")
	}
}

func TestRateLimit_BlocksExcessiveRequests(t *testing.T) {
	rejected := 0
	rl := NewRateLimiter(1, 2).OnReject(func() { rejected++ })
	defer rl.Stop()

	router := gin.New()
	router.Use(ErrorHandler(), rl.Middleware())
	router.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{200, 200, 429, 429}, codes)
	assert.Equal(t, 2, rejected)

	// another client keeps its own bucket
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:12345"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/creators", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/creators", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/creators", nil)
	req.Header.Set("Origin", "http://evil.example")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	m := NewMetrics()
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/creators/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/creators/abc", nil)
	router.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	body, _ := io.ReadAll(w.Body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(string(body), `http_requests_total{method="GET",path="/creators/:id",status="200"} 1`))
}
