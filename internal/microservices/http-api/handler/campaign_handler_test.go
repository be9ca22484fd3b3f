package handler_test

import (
	"net/http"
	"testing"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/handler"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCampaignHandler_Create(t *testing.T) {
	t.Run("Brand sends an offer", func(t *testing.T) {
		mockService := new(MockCampaignService)
		r := setupRouter(handler.NewCampaignHandler(mockService), "brand-1", models.RoleBrand)

		mockService.On("Create", mock.Anything, "brand-1", mock.MatchedBy(func(req dto.CreateCampaignRequest) bool {
			return req.CreatorID == "creator-1" && req.Budget.Equal(decimal.NewFromInt(1))
		})).Return(&models.Campaign{ID: "cmp-1", Status: models.CampaignPending, Budget: decimal.NewFromInt(1)}, nil).Once()

		w := doJSON(r, http.MethodPost, "/campaigns", gin.H{"creatorId": "creator-1", "title": "Spring launch", "budget": 1})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Non-positive budget", func(t *testing.T) {
		mockService := new(MockCampaignService)
		r := setupRouter(handler.NewCampaignHandler(mockService), "brand-1", models.RoleBrand)
		mockService.On("Create", mock.Anything, "brand-1", mock.Anything).
			Return(nil, apperrors.BadRequest("budget must be a positive number")).Once()

		w := doJSON(r, http.MethodPost, "/campaigns", gin.H{"creatorId": "creator-1", "title": "Free", "budget": 0})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, errorBody(w), "positive")
	})

	t.Run("Malformed budget", func(t *testing.T) {
		for _, budget := range []any{"abc", true, gin.H{"amount": 5}} {
			mockService := new(MockCampaignService)
			r := setupRouter(handler.NewCampaignHandler(mockService), "brand-1", models.RoleBrand)

			w := doJSON(r, http.MethodPost, "/campaigns", gin.H{"creatorId": "creator-1", "title": "Launch", "budget": budget})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "budget must be a decimal number", errorBody(w))
			mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Creator cannot send offers", func(t *testing.T) {
		mockService := new(MockCampaignService)
		r := setupRouter(handler.NewCampaignHandler(mockService), "creator-1", models.RoleCreator)

		w := doJSON(r, http.MethodPost, "/campaigns", gin.H{"creatorId": "creator-2", "title": "x", "budget": 10})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCampaignHandler_UpdateStatus(t *testing.T) {
	t.Run("Addressed creator accepts", func(t *testing.T) {
		mockService := new(MockCampaignService)
		r := setupRouter(handler.NewCampaignHandler(mockService), "creator-1", models.RoleCreator)
		mockService.On("UpdateStatus", mock.Anything, "cmp-1", "creator-1", models.CampaignAccepted).
			Return(&models.Campaign{ID: "cmp-1", Status: models.CampaignAccepted}, nil).Once()

		w := doJSON(r, http.MethodPatch, "/campaigns/cmp-1", gin.H{"status": "accepted"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"accepted"`)
	})

	t.Run("Other creator is forbidden", func(t *testing.T) {
		mockService := new(MockCampaignService)
		r := setupRouter(handler.NewCampaignHandler(mockService), "creator-2", models.RoleCreator)
		mockService.On("UpdateStatus", mock.Anything, "cmp-1", "creator-2", models.CampaignDeclined).
			Return(nil, apperrors.Forbidden("only the addressed creator can respond to this campaign")).Once()

		w := doJSON(r, http.MethodPatch, "/campaigns/cmp-1", gin.H{"status": "declined"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Status outside the decision set", func(t *testing.T) {
		mockService := new(MockCampaignService)
		r := setupRouter(handler.NewCampaignHandler(mockService), "creator-1", models.RoleCreator)

		w := doJSON(r, http.MethodPatch, "/campaigns/cmp-1", gin.H{"status": "pending"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "status must be accepted or declined", errorBody(w))
		mockService.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Brand cannot respond", func(t *testing.T) {
		mockService := new(MockCampaignService)
		r := setupRouter(handler.NewCampaignHandler(mockService), "brand-1", models.RoleBrand)

		w := doJSON(r, http.MethodPatch, "/campaigns/cmp-1", gin.H{"status": "accepted"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCampaignHandler_List(t *testing.T) {
	mockService := new(MockCampaignService)
	r := setupRouter(handler.NewCampaignHandler(mockService), "creator-1", models.RoleCreator)
	mockService.On("ListForUser", mock.Anything, "creator-1", models.RoleCreator).
		Return([]models.Campaign{{ID: "cmp-1", CreatorID: "creator-1"}}, nil).Once()

	w := doJSON(r, http.MethodGet, "/campaigns", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"cmp-1"`)
	mockService.AssertExpectations(t)
}
