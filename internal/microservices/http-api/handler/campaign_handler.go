package handler

import (
	"net/http"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/middleware"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/service"
	"creatorhub/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignService service.CampaignService
}

func NewCampaignHandler(campaignService service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// RegisterRoutes registers campaign routes; every route needs a token.
func (h *CampaignHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	campaigns := router.Group("/campaigns", requireAuth)
	{
		campaigns.GET("", h.List)
		campaigns.POST("", middleware.RequireRole(models.RoleBrand), h.Create)
		campaigns.PATCH("/:id", middleware.RequireRole(models.RoleCreator), h.UpdateStatus)
	}
}

// List returns campaigns the caller sent (brand) or received (creator).
// GET /campaigns
func (h *CampaignHandler) List(c *gin.Context) {
	role, ok := middleware.RoleFrom(c)
	if !ok {
		_ = c.Error(apperrors.Unauthorized("authentication required"))
		return
	}

	campaigns, err := h.campaignService.ListForUser(c.Request.Context(), middleware.UserIDFrom(c), role)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// POST /campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.Create(c.Request.Context(), middleware.UserIDFrom(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// UpdateStatus records the creator's decision.
// PATCH /campaigns/:id
func (h *CampaignHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateCampaignStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		middleware.UserIDFrom(c),
		models.CampaignStatus(req.Status),
	)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}
