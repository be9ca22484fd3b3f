package repository

import (
	"context"
	"fmt"
	"time"

	"creatorhub/database"
	"creatorhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingAggregate is the average score and number of ratings a user received.
type RatingAggregate struct {
	Average float64
	Count   int64
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	FindByPair(ctx context.Context, fromUserID, toUserID string) (*models.Rating, error)
	Aggregate(ctx context.Context, toUserID string) (RatingAggregate, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the score for the (from, to) pair in a single statement,
// replacing any earlier score. Returns the stored row.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_user_id"}, {Name: "to_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(rating).Error

	if database.IsUniqueViolation(err) {
		// lost a race against a concurrent insert for the same pair
		err = db.Model(&models.Rating{}).
			Where("from_user_id = ? AND to_user_id = ?", rating.FromUserID, rating.ToUserID).
			Updates(map[string]any{"score": rating.Score, "updated_at": time.Now()}).Error
	}
	if err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	// the conflict path does not report the existing primary key on every driver
	return r.FindByPair(ctx, rating.FromUserID, rating.ToUserID)
}

func (r *ratingRepository) FindByPair(ctx context.Context, fromUserID, toUserID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Aggregate computes average and count in one query. Average is 0 when there are no ratings.
func (r *ratingRepository) Aggregate(ctx context.Context, toUserID string) (RatingAggregate, error) {
	var agg RatingAggregate
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("to_user_id = ?", toUserID).
		Scan(&agg).Error
	if err != nil {
		return RatingAggregate{}, fmt.Errorf("aggregate ratings: %w", err)
	}
	return agg, nil
}
