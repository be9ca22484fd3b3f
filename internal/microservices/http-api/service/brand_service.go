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

type BrandService interface {
	UpsertProfile(ctx context.Context, userID string, req dto.UpsertBrandProfileRequest) (*models.BrandProfile, error)
	List(ctx context.Context, q dto.BrandListQuery) ([]models.BrandProfile, int64, error)
	GetByID(ctx context.Context, id string) (*models.BrandProfile, error)
	GetByUser(ctx context.Context, userID string) (*models.BrandProfile, error)
}

type brandService struct {
	repo repository.BrandProfileRepository
	log  zerolog.Logger
}

func NewBrandService(repo repository.BrandProfileRepository) BrandService {
	return &brandService{repo: repo, log: logger.With("brands")}
}

func (s *brandService) UpsertProfile(ctx context.Context, userID string, req dto.UpsertBrandProfileRequest) (*models.BrandProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("find brand profile: %w", err)
	}

	creating := profile == nil
	if creating {
		profile = &models.BrandProfile{UserID: userID}
	}
	req.ApplyTo(profile)
	if profile.CompanyName == "" {
		return nil, apperrors.BadRequest("companyName is required")
	}

	if creating {
		if err := s.repo.Create(ctx, profile); err != nil {
			if database.IsUniqueViolation(err) {
				return nil, apperrors.Conflict("profile already exists").Wrap(err)
			}
			return nil, err
		}
		s.log.Info().Str("user_id", userID).Str("profile_id", profile.ID).Msg("brand profile created")
		return profile, nil
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *brandService) List(ctx context.Context, q dto.BrandListQuery) ([]models.BrandProfile, int64, error) {
	p := q.Pagination.Normalize()
	return s.repo.List(ctx, repository.BrandFilter{
		Category:  q.Category,
		MinRating: q.MinRating,
		Search:    q.Search,
		Page:      repository.Page{Offset: p.Offset(), Limit: p.Limit},
	})
}

func (s *brandService) GetByID(ctx context.Context, id string) (*models.BrandProfile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "brand not found", "find brand profile")
	}
	return profile, nil
}

func (s *brandService) GetByUser(ctx context.Context, userID string) (*models.BrandProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "brand profile not found", "find brand profile")
	}
	return profile, nil
}
