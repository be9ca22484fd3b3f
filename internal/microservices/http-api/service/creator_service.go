package service

import (
	"context"
	"fmt"

	"creatorhub/database"
	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/repository"
	"creatorhub/pkg/apperrors"
	"creatorhub/pkg/logger"

	"github.com/rs/zerolog"
)

type CreatorService interface {
	UpsertProfile(ctx context.Context, userID string, req dto.UpsertCreatorProfileRequest) (*models.CreatorProfile, error)
	List(ctx context.Context, q dto.CreatorListQuery) ([]models.CreatorProfile, int64, error)
	GetByID(ctx context.Context, id string) (*models.CreatorProfile, error)
	GetByUser(ctx context.Context, userID string) (*models.CreatorProfile, error)
}

type creatorService struct {
	repo repository.CreatorProfileRepository
	log  zerolog.Logger
}

func NewCreatorService(repo repository.CreatorProfileRepository) CreatorService {
	return &creatorService{repo: repo, log: logger.With("creators")}
}

// UpsertProfile partially updates the caller's profile, creating it on first use.
func (s *creatorService) UpsertProfile(ctx context.Context, userID string, req dto.UpsertCreatorProfileRequest) (*models.CreatorProfile, error) {
	if req.FollowersCount != nil && *req.FollowersCount < 0 {
		return nil, apperrors.BadRequest("followersCount must be zero or more")
	}
	if req.EngagementRate != nil && (*req.EngagementRate < 0 || *req.EngagementRate > 100) {
		return nil, apperrors.BadRequest("engagementRate must be between 0 and 100")
	}

	profile, err := s.repo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		req.ApplyTo(profile)
		if profile.DisplayName == "" {
			return nil, apperrors.BadRequest("displayName is required")
		}
		if err := s.repo.Update(ctx, profile); err != nil {
			return nil, err
		}
		s.log.Debug().Str("user_id", userID).Msg("creator profile updated")
		return profile, nil

	case isNotFound(err):
		profile = &models.CreatorProfile{UserID: userID}
		req.ApplyTo(profile)
		if profile.DisplayName == "" {
			return nil, apperrors.BadRequest("displayName is required")
		}
		if profile.Niches == nil {
			profile.Niches = []string{}
		}
		if profile.PromotionTypes == nil {
			profile.PromotionTypes = []string{}
		}
		if err := s.repo.Create(ctx, profile); err != nil {
			if database.IsUniqueViolation(err) {
				return nil, apperrors.Conflict("profile already exists").Wrap(err)
			}
			return nil, err
		}
		s.log.Info().Str("user_id", userID).Str("profile_id", profile.ID).Msg("creator profile created")
		return profile, nil

	default:
		return nil, fmt.Errorf("find creator profile: %w", err)
	}
}

func (s *creatorService) List(ctx context.Context, q dto.CreatorListQuery) ([]models.CreatorProfile, int64, error) {
	p := q.Pagination.Normalize()
	return s.repo.List(ctx, repository.CreatorFilter{
		Niche:         q.Niche,
		MinFollowers:  q.MinFollowers,
		MinEngagement: q.MinEngagement,
		MinRating:     q.MinRating,
		Search:        q.Search,
		Page:          repository.Page{Offset: p.Offset(), Limit: p.Limit},
	})
}

func (s *creatorService) GetByID(ctx context.Context, id string) (*models.CreatorProfile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "creator not found", "find creator profile")
	}
	return profile, nil
}

func (s *creatorService) GetByUser(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "creator profile not found", "find creator profile")
	}
	return profile, nil
}
