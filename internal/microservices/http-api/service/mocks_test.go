package service

import (
	"context"

	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CreateWithProfile(ctx context.Context, user *models.User, build func(userID string) any) error {
	args := m.Called(ctx, user, build)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockCreatorProfileRepository struct {
	mock.Mock
}

func (m *MockCreatorProfileRepository) Create(ctx context.Context, p *models.CreatorProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCreatorProfileRepository) Update(ctx context.Context, p *models.CreatorProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCreatorProfileRepository) FindByID(ctx context.Context, id string) (*models.CreatorProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatorProfile), args.Error(1)
}

func (m *MockCreatorProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatorProfile), args.Error(1)
}

func (m *MockCreatorProfileRepository) List(ctx context.Context, f repository.CreatorFilter) ([]models.CreatorProfile, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.CreatorProfile), args.Get(1).(int64), args.Error(2)
}

type MockBrandProfileRepository struct {
	mock.Mock
}

func (m *MockBrandProfileRepository) Create(ctx context.Context, p *models.BrandProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockBrandProfileRepository) Update(ctx context.Context, p *models.BrandProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockBrandProfileRepository) FindByID(ctx context.Context, id string) (*models.BrandProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BrandProfile), args.Error(1)
}

func (m *MockBrandProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.BrandProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BrandProfile), args.Error(1)
}

func (m *MockBrandProfileRepository) List(ctx context.Context, f repository.BrandFilter) ([]models.BrandProfile, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.BrandProfile), args.Get(1).(int64), args.Error(2)
}

type MockRequirementRepository struct {
	mock.Mock
}

func (m *MockRequirementRepository) Create(ctx context.Context, req *models.Requirement) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockRequirementRepository) Update(ctx context.Context, req *models.Requirement) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockRequirementRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRequirementRepository) FindByID(ctx context.Context, id string) (*models.Requirement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) List(ctx context.Context, f repository.RequirementFilter) ([]models.Requirement, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Requirement), args.Get(1).(int64), args.Error(2)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	args := m.Called(ctx, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByPair(ctx context.Context, fromUserID, toUserID string) (*models.Rating, error) {
	args := m.Called(ctx, fromUserID, toUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Aggregate(ctx context.Context, toUserID string) (repository.RatingAggregate, error) {
	args := m.Called(ctx, toUserID)
	return args.Get(0).(repository.RatingAggregate), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) ListByTarget(ctx context.Context, toUserID string) ([]models.Review, error) {
	args := m.Called(ctx, toUserID)
	return args.Get(0).([]models.Review), args.Error(1)
}

type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, c *models.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id string) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) UpdateStatus(ctx context.Context, c *models.Campaign, status models.CampaignStatus) error {
	return m.Called(ctx, c, status).Error(0)
}

func (m *MockCampaignRepository) ListByBrand(ctx context.Context, brandID string) ([]models.Campaign, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).([]models.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) ListByCreator(ctx context.Context, creatorID string) ([]models.Campaign, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).([]models.Campaign), args.Error(1)
}
