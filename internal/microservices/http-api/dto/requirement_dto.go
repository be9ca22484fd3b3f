package dto

import (
	"strings"

	"creatorhub/internal/microservices/http-api/models"

	"github.com/shopspring/decimal"
)

type CreateRequirementRequest struct {
	Title             string              `json:"title" binding:"required,max=200"`
	Description       string              `json:"description" binding:"max=5000"`
	Niches            []string            `json:"niches" binding:"omitempty,max=20,dive,min=1,max=50"`
	MinFollowers      int64               `json:"minFollowers" binding:"gte=0"`
	MinEngagementRate float64             `json:"minEngagementRate" binding:"gte=0,lte=100"`
	BudgetMin         decimal.NullDecimal `json:"budgetMin"`
	BudgetMax         decimal.NullDecimal `json:"budgetMax"`
	Status            string              `json:"status" binding:"omitempty,requirement_status"`
}

// ToModel builds a requirement owned by brandID. Status defaults to open.
func (r CreateRequirementRequest) ToModel(brandID string) *models.Requirement {
	status := models.RequirementOpen
	if s, err := models.ParseRequirementStatus(r.Status); err == nil {
		status = s
	}
	return &models.Requirement{
		BrandID:           brandID,
		Title:             strings.TrimSpace(r.Title),
		Description:       r.Description,
		Niches:            NormalizeTags(r.Niches),
		MinFollowers:      r.MinFollowers,
		MinEngagementRate: r.MinEngagementRate,
		BudgetMin:         r.BudgetMin,
		BudgetMax:         r.BudgetMax,
		Status:            status,
	}
}

// UpdateRequirementRequest is a partial update; BrandID is never accepted.
type UpdateRequirementRequest struct {
	Title             *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Description       *string          `json:"description" binding:"omitempty,max=5000"`
	Niches            []string         `json:"niches" binding:"omitempty,max=20,dive,min=1,max=50"`
	MinFollowers      *int64           `json:"minFollowers" binding:"omitempty,gte=0"`
	MinEngagementRate *float64         `json:"minEngagementRate" binding:"omitempty,gte=0,lte=100"`
	BudgetMin         *decimal.Decimal `json:"budgetMin"`
	BudgetMax         *decimal.Decimal `json:"budgetMax"`
	Status            *string          `json:"status" binding:"omitempty,requirement_status"`
}

func (r UpdateRequirementRequest) ApplyTo(req *models.Requirement) {
	if r.Title != nil {
		req.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		req.Description = *r.Description
	}
	if r.Niches != nil {
		req.Niches = NormalizeTags(r.Niches)
	}
	if r.MinFollowers != nil {
		req.MinFollowers = *r.MinFollowers
	}
	if r.MinEngagementRate != nil {
		req.MinEngagementRate = *r.MinEngagementRate
	}
	if r.BudgetMin != nil {
		req.BudgetMin = decimal.NewNullDecimal(*r.BudgetMin)
	}
	if r.BudgetMax != nil {
		req.BudgetMax = decimal.NewNullDecimal(*r.BudgetMax)
	}
	if r.Status != nil {
		if s, err := models.ParseRequirementStatus(*r.Status); err == nil {
			req.Status = s
		}
	}
}

// RequirementListQuery: filters for GET /requirements
type RequirementListQuery struct {
	Niche        string `form:"niche"`
	MinFollowers *int64 `form:"minFollowers" binding:"omitempty,gte=0"`
	Status       string `form:"status" binding:"omitempty,requirement_status"`
	BrandID      string `form:"brandId"`
	Pagination
}
