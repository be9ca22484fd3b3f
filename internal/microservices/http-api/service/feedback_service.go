package service

import (
	"context"
	"strconv"
	"strings"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/repository"
	"creatorhub/pkg/apperrors"
	"creatorhub/pkg/logger"

	"github.com/rs/zerolog"
)

const (
	MinScore = 1
	MaxScore = 5
)

// FeedbackService covers ratings and reviews between users.
type FeedbackService interface {
	UpsertRating(ctx context.Context, fromUserID string, req dto.CreateRatingRequest) (*models.Rating, error)
	CreateReview(ctx context.Context, fromUserID string, req dto.CreateReviewRequest) (*models.Review, error)
	GetAggregateForUser(ctx context.Context, userID string) (*dto.RatingSummaryResponse, error)
	ListReviewsForUser(ctx context.Context, userID string) ([]models.Review, error)
}

type feedbackService struct {
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
	reviewRepo repository.ReviewRepository
	log        zerolog.Logger
}

func NewFeedbackService(
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
) FeedbackService {
	return &feedbackService{
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
		reviewRepo: reviewRepo,
		log:        logger.With("feedback"),
	}
}

// UpsertRating stores one score per (rater, rated) pair; rating again replaces the score.
func (s *feedbackService) UpsertRating(ctx context.Context, fromUserID string, req dto.CreateRatingRequest) (*models.Rating, error) {
	if req.Score < MinScore || req.Score > MaxScore {
		return nil, apperrors.BadRequestf("score must be an integer between %d and %d", MinScore, MaxScore)
	}
	if err := s.checkTarget(ctx, fromUserID, req.ToUserID, "you cannot rate yourself"); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.Upsert(ctx, &models.Rating{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Score:      req.Score,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("from_user_id", fromUserID).
		Str("to_user_id", req.ToUserID).
		Int("score", req.Score).
		Msg("rating saved")
	return rating, nil
}

func (s *feedbackService) CreateReview(ctx context.Context, fromUserID string, req dto.CreateReviewRequest) (*models.Review, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.BadRequest("content is required")
	}
	if err := s.checkTarget(ctx, fromUserID, req.ToUserID, "you cannot review yourself"); err != nil {
		return nil, err
	}

	review := &models.Review{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Content:    content,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// GetAggregateForUser never 404s: a user nobody rated has average "0.0" and count 0.
func (s *feedbackService) GetAggregateForUser(ctx context.Context, userID string) (*dto.RatingSummaryResponse, error) {
	agg, err := s.ratingRepo.Aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.RatingSummaryResponse{
		UserID:  userID,
		Average: FormatAverage(agg.Average),
		Count:   agg.Count,
	}, nil
}

func (s *feedbackService) ListReviewsForUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.reviewRepo.ListByTarget(ctx, userID)
}

func (s *feedbackService) checkTarget(ctx context.Context, fromUserID, toUserID, selfMsg string) error {
	if fromUserID == toUserID {
		return apperrors.BadRequest(selfMsg)
	}
	if _, err := s.userRepo.FindByID(ctx, toUserID); err != nil {
		return notFoundOr(err, "user not found", "find target user")
	}
	return nil
}

// FormatAverage renders an average with exactly one decimal place.
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}
