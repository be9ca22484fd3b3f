package dto

import (
	"strings"

	"creatorhub/internal/microservices/http-api/models"
)

// UpsertBrandProfileRequest is a partial update: nil fields keep their stored value.
type UpsertBrandProfileRequest struct {
	CompanyName *string `json:"companyName" binding:"omitempty,min=1,max=150"`
	Bio         *string `json:"bio" binding:"omitempty,max=2000"`
	LogoURL     *string `json:"logoUrl" binding:"omitempty,max=500"`
	Website     *string `json:"website" binding:"omitempty,max=255"`
	Category    *string `json:"category" binding:"omitempty,max=64"`
}

func (r UpsertBrandProfileRequest) ApplyTo(p *models.BrandProfile) {
	if r.CompanyName != nil {
		p.CompanyName = strings.TrimSpace(*r.CompanyName)
	}
	if r.Bio != nil {
		p.Bio = *r.Bio
	}
	if r.LogoURL != nil {
		p.LogoURL = strings.TrimSpace(*r.LogoURL)
	}
	if r.Website != nil {
		p.Website = strings.TrimSpace(*r.Website)
	}
	if r.Category != nil {
		p.Category = strings.ToLower(strings.TrimSpace(*r.Category))
	}
}

// BrandListQuery: filters for GET /brands
type BrandListQuery struct {
	Category  string   `form:"category"`
	MinRating *float64 `form:"minRating" binding:"omitempty,gte=0,lte=5"`
	Search    string   `form:"search" binding:"omitempty,max=100"`
	Pagination
}
