package dto

import (
	"strings"

	"creatorhub/internal/microservices/http-api/models"
)

// UpsertCreatorProfileRequest is a partial update: nil fields keep their stored value.
type UpsertCreatorProfileRequest struct {
	DisplayName    *string  `json:"displayName" binding:"omitempty,min=1,max=100"`
	Bio            *string  `json:"bio" binding:"omitempty,max=2000"`
	AvatarURL      *string  `json:"avatarUrl" binding:"omitempty,max=500"`
	Platform       *string  `json:"platform" binding:"omitempty,platform"`
	SocialHandle   *string  `json:"socialHandle" binding:"omitempty,max=100"`
	FollowersCount *int64   `json:"followersCount"`
	EngagementRate *float64 `json:"engagementRate"`
	Niches         []string `json:"niches" binding:"omitempty,max=20,dive,min=1,max=50"`
	PromotionTypes []string `json:"promotionTypes" binding:"omitempty,max=20,dive,min=1,max=50"`
}

// ApplyTo copies the provided fields onto p.
func (r UpsertCreatorProfileRequest) ApplyTo(p *models.CreatorProfile) {
	if r.DisplayName != nil {
		p.DisplayName = strings.TrimSpace(*r.DisplayName)
	}
	if r.Bio != nil {
		p.Bio = *r.Bio
	}
	if r.AvatarURL != nil {
		p.AvatarURL = strings.TrimSpace(*r.AvatarURL)
	}
	if r.Platform != nil {
		p.Platform = strings.ToLower(strings.TrimSpace(*r.Platform))
	}
	if r.SocialHandle != nil {
		p.SocialHandle = strings.TrimPrefix(strings.TrimSpace(*r.SocialHandle), "@")
	}
	if r.FollowersCount != nil {
		p.FollowersCount = *r.FollowersCount
	}
	if r.EngagementRate != nil {
		p.EngagementRate = *r.EngagementRate
	}
	if r.Niches != nil {
		p.Niches = NormalizeTags(r.Niches)
	}
	if r.PromotionTypes != nil {
		p.PromotionTypes = NormalizeTags(r.PromotionTypes)
	}
}

// CreatorListQuery: filters for GET /creators
type CreatorListQuery struct {
	Niche         string   `form:"niche"`
	MinFollowers  *int64   `form:"minFollowers" binding:"omitempty,gte=0"`
	MinEngagement *float64 `form:"minEngagement" binding:"omitempty,gte=0,lte=100"`
	MinRating     *float64 `form:"minRating" binding:"omitempty,gte=0,lte=5"`
	Search        string   `form:"search" binding:"omitempty,max=100"`
	Pagination
}
