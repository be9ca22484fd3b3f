package service

import (
	"context"
	"net/http"
	"testing"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCampaignCreate_BudgetMustBePositive(t *testing.T) {
	for _, budget := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		users := new(MockUserRepository)
		campaigns := new(MockCampaignRepository)

		_, err := NewCampaignService(users, campaigns).Create(context.Background(), "brand", dto.CreateCampaignRequest{
			CreatorID: "creator",
			Title:     "Launch",
			Budget:    budget,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsStatus(err, http.StatusBadRequest))
		assert.Contains(t, err.Error(), "positive")
		campaigns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestCampaignCreate_BudgetMustFitColumn(t *testing.T) {
	for _, budget := range []string{"0.001", "10000000000"} {
		users := new(MockUserRepository)
		campaigns := new(MockCampaignRepository)

		_, err := NewCampaignService(users, campaigns).Create(context.Background(), "brand", dto.CreateCampaignRequest{
			CreatorID: "creator",
			Title:     "Launch",
			Budget:    decimal.RequireFromString(budget),
		})

		assert.True(t, apperrors.IsStatus(err, http.StatusBadRequest), budget)
		campaigns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	}
}

func TestCampaignCreate_Pending(t *testing.T) {
	users := new(MockUserRepository)
	campaigns := new(MockCampaignRepository)
	users.On("FindByID", mock.Anything, "creator").Return(&models.User{ID: "creator", Role: models.RoleCreator}, nil)
	campaigns.On("Create", mock.Anything, mock.AnythingOfType("*models.Campaign")).Return(nil)

	c, err := NewCampaignService(users, campaigns).Create(context.Background(), "brand", dto.CreateCampaignRequest{
		CreatorID: "creator",
		Title:     "Launch",
		Budget:    decimal.NewFromInt(1),
	})

	require.NoError(t, err)
	assert.Equal(t, models.CampaignPending, c.Status)
	assert.Equal(t, "brand", c.BrandID)
	campaigns.AssertExpectations(t)
}

func TestCampaignCreate_TargetMustBeCreator(t *testing.T) {
	users := new(MockUserRepository)
	campaigns := new(MockCampaignRepository)
	users.On("FindByID", mock.Anything, "other-brand").Return(&models.User{ID: "other-brand", Role: models.RoleBrand}, nil)
	users.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
	svc := NewCampaignService(users, campaigns)

	for _, id := range []string{"other-brand", "ghost"} {
		_, err := svc.Create(context.Background(), "brand", dto.CreateCampaignRequest{
			CreatorID: id,
			Title:     "Launch",
			Budget:    decimal.NewFromInt(10),
		})
		assert.True(t, apperrors.IsStatus(err, http.StatusNotFound), id)
	}
}

func TestCampaignUpdateStatus(t *testing.T) {
	newCampaign := func() *models.Campaign {
		return &models.Campaign{ID: "c1", BrandID: "brand", CreatorID: "creator", Status: models.CampaignPending}
	}

	t.Run("target creator, last write wins", func(t *testing.T) {
		users := new(MockUserRepository)
		campaigns := new(MockCampaignRepository)
		c := newCampaign()
		campaigns.On("FindByID", mock.Anything, "c1").Return(c, nil)
		campaigns.On("UpdateStatus", mock.Anything, c, mock.Anything).Return(nil)
		svc := NewCampaignService(users, campaigns)

		got, err := svc.UpdateStatus(context.Background(), "c1", "creator", models.CampaignAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.CampaignAccepted, got.Status)

		got, err = svc.UpdateStatus(context.Background(), "c1", "creator", models.CampaignDeclined)
		require.NoError(t, err)
		assert.Equal(t, models.CampaignDeclined, got.Status)
	})

	t.Run("other creator forbidden", func(t *testing.T) {
		campaigns := new(MockCampaignRepository)
		campaigns.On("FindByID", mock.Anything, "c1").Return(newCampaign(), nil)

		_, err := NewCampaignService(new(MockUserRepository), campaigns).UpdateStatus(context.Background(), "c1", "someone-else", models.CampaignAccepted)

		assert.True(t, apperrors.IsStatus(err, http.StatusForbidden))
		campaigns.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		campaigns := new(MockCampaignRepository)

		_, err := NewCampaignService(new(MockUserRepository), campaigns).UpdateStatus(context.Background(), "c1", "creator", models.CampaignPending)

		assert.True(t, apperrors.IsStatus(err, http.StatusBadRequest))
	})

	t.Run("unknown campaign", func(t *testing.T) {
		campaigns := new(MockCampaignRepository)
		campaigns.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := NewCampaignService(new(MockUserRepository), campaigns).UpdateStatus(context.Background(), "missing", "creator", models.CampaignAccepted)

		assert.True(t, apperrors.IsStatus(err, http.StatusNotFound))
	})
}

func TestCampaignListForUser(t *testing.T) {
	campaigns := new(MockCampaignRepository)
	campaigns.On("ListByBrand", mock.Anything, "brand").Return([]models.Campaign{{ID: "a"}}, nil)
	campaigns.On("ListByCreator", mock.Anything, "creator").Return([]models.Campaign{{ID: "b"}, {ID: "c"}}, nil)
	svc := NewCampaignService(new(MockUserRepository), campaigns)

	sent, err := svc.ListForUser(context.Background(), "brand", models.RoleBrand)
	require.NoError(t, err)
	assert.Len(t, sent, 1)

	received, err := svc.ListForUser(context.Background(), "creator", models.RoleCreator)
	require.NoError(t, err)
	assert.Len(t, received, 2)

	_, err = svc.ListForUser(context.Background(), "x", models.Role("admin"))
	assert.Error(t, err)
}
