package dto

import (
	"strings"

	"creatorhub/internal/microservices/http-api/models"

	"github.com/shopspring/decimal"
)

type CreateCampaignRequest struct {
	CreatorID   string          `json:"creatorId" binding:"required"`
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=5000"`
	Budget      decimal.Decimal `json:"budget"`
}

func (r CreateCampaignRequest) ToModel(brandID string) *models.Campaign {
	return &models.Campaign{
		BrandID:     brandID,
		CreatorID:   r.CreatorID,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Budget:      r.Budget,
		Status:      models.CampaignPending,
	}
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required,campaign_decision"`
}
