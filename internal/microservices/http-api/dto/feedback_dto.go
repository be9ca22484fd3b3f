package dto

import (
	"time"

	"creatorhub/internal/microservices/http-api/models"
)

// CreateRatingRequest: rate another user 1 to 5. A repeat rating replaces the earlier score.
type CreateRatingRequest struct {
	ToUserID string `json:"toUserId" binding:"required"`
	Score    int    `json:"score" binding:"min=1,max=5"`
}

type CreateReviewRequest struct {
	ToUserID string `json:"toUserId" binding:"required"`
	Content  string `json:"content" binding:"required,min=1,max=5000"`
}

// RatingSummaryResponse is the aggregate for one rated user. Average is a
// one-decimal string, "0.0" when Count is zero.
type RatingSummaryResponse struct {
	UserID  string `json:"userId"`
	Average string `json:"average"`
	Count   int64  `json:"count"`
}

type ReviewResponse struct {
	ID         int64     `json:"id"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromModelToReviewResponse(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		Content:    r.Content,
		CreatedAt:  r.CreatedAt,
	}
}
