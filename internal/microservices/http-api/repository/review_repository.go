package repository

import (
	"context"
	"fmt"

	"creatorhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByTarget(ctx context.Context, toUserID string) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// ListByTarget returns every review about toUserID, oldest first.
func (r *reviewRepository) ListByTarget(ctx context.Context, toUserID string) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := r.db.WithContext(ctx).
		Where("to_user_id = ?", toUserID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
