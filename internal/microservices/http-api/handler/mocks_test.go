package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/middleware"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/service"
	"creatorhub/internal/social"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}
}

// --- ROUTER HELPERS ---

// mockAuthMiddleware stands in for the bearer check. An empty userID rejects the request.
func mockAuthMiddleware(userID string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc)
}

func setupRouter(h routeRegistrar, userID string, role models.Role) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h.RegisterRoutes(&r.RouterGroup, mockAuthMiddleware(userID, role))
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(w *httptest.ResponseRecorder) string {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body.Error
}

func strPtr(s string) *string { return &s }

// --- MOCK SERVICES ---

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in dto.RegisterInput) (*dto.AuthResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) VerifyToken(tokenString string) (*service.Claims, bool) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*service.Claims), args.Bool(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockCreatorService struct {
	mock.Mock
}

func (m *MockCreatorService) UpsertProfile(ctx context.Context, userID string, req dto.UpsertCreatorProfileRequest) (*models.CreatorProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatorProfile), args.Error(1)
}

func (m *MockCreatorService) List(ctx context.Context, q dto.CreatorListQuery) ([]models.CreatorProfile, int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]models.CreatorProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockCreatorService) GetByID(ctx context.Context, id string) (*models.CreatorProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatorProfile), args.Error(1)
}

func (m *MockCreatorService) GetByUser(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatorProfile), args.Error(1)
}

type MockBrandService struct {
	mock.Mock
}

func (m *MockBrandService) UpsertProfile(ctx context.Context, userID string, req dto.UpsertBrandProfileRequest) (*models.BrandProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BrandProfile), args.Error(1)
}

func (m *MockBrandService) List(ctx context.Context, q dto.BrandListQuery) ([]models.BrandProfile, int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]models.BrandProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockBrandService) GetByID(ctx context.Context, id string) (*models.BrandProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BrandProfile), args.Error(1)
}

func (m *MockBrandService) GetByUser(ctx context.Context, userID string) (*models.BrandProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BrandProfile), args.Error(1)
}

type MockRequirementService struct {
	mock.Mock
}

func (m *MockRequirementService) Create(ctx context.Context, brandID string, req dto.CreateRequirementRequest) (*models.Requirement, error) {
	args := m.Called(ctx, brandID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Requirement), args.Error(1)
}

func (m *MockRequirementService) Update(ctx context.Context, id, requesterID string, patch dto.UpdateRequirementRequest) (*models.Requirement, error) {
	args := m.Called(ctx, id, requesterID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Requirement), args.Error(1)
}

func (m *MockRequirementService) Delete(ctx context.Context, id, requesterID string) error {
	return m.Called(ctx, id, requesterID).Error(0)
}

func (m *MockRequirementService) GetByID(ctx context.Context, id string) (*models.Requirement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Requirement), args.Error(1)
}

func (m *MockRequirementService) List(ctx context.Context, q dto.RequirementListQuery) ([]models.Requirement, int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]models.Requirement), args.Get(1).(int64), args.Error(2)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) UpsertRating(ctx context.Context, fromUserID string, req dto.CreateRatingRequest) (*models.Rating, error) {
	args := m.Called(ctx, fromUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockFeedbackService) CreateReview(ctx context.Context, fromUserID string, req dto.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, fromUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockFeedbackService) GetAggregateForUser(ctx context.Context, userID string) (*dto.RatingSummaryResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingSummaryResponse), args.Error(1)
}

func (m *MockFeedbackService) ListReviewsForUser(ctx context.Context, userID string) ([]models.Review, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Review), args.Error(1)
}

type MockCampaignService struct {
	mock.Mock
}

func (m *MockCampaignService) Create(ctx context.Context, brandID string, req dto.CreateCampaignRequest) (*models.Campaign, error) {
	args := m.Called(ctx, brandID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignService) UpdateStatus(ctx context.Context, id, requesterID string, status models.CampaignStatus) (*models.Campaign, error) {
	args := m.Called(ctx, id, requesterID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignService) ListForUser(ctx context.Context, userID string, role models.Role) ([]models.Campaign, error) {
	args := m.Called(ctx, userID, role)
	return args.Get(0).([]models.Campaign), args.Error(1)
}

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, platform, handle string) (*social.Metrics, error) {
	args := m.Called(ctx, platform, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Metrics), args.Error(1)
}
