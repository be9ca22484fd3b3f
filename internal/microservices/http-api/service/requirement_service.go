package service

import (
	"context"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/repository"
	"creatorhub/pkg/apperrors"
	"creatorhub/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type RequirementService interface {
	Create(ctx context.Context, brandID string, req dto.CreateRequirementRequest) (*models.Requirement, error)
	Update(ctx context.Context, id, requesterID string, patch dto.UpdateRequirementRequest) (*models.Requirement, error)
	Delete(ctx context.Context, id, requesterID string) error
	GetByID(ctx context.Context, id string) (*models.Requirement, error)
	List(ctx context.Context, q dto.RequirementListQuery) ([]models.Requirement, int64, error)
}

type requirementService struct {
	repo repository.RequirementRepository
	log  zerolog.Logger
}

func NewRequirementService(repo repository.RequirementRepository) RequirementService {
	return &requirementService{repo: repo, log: logger.With("requirements")}
}

func (s *requirementService) Create(ctx context.Context, brandID string, req dto.CreateRequirementRequest) (*models.Requirement, error) {
	r := req.ToModel(brandID)
	if err := validateRequirement(r); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.Info().Str("brand_id", brandID).Str("requirement_id", r.ID).Msg("requirement created")
	return r, nil
}

// Update and Delete check existence before ownership, so a missing id is a 404 for everyone.
func (s *requirementService) Update(ctx context.Context, id, requesterID string, patch dto.UpdateRequirementRequest) (*models.Requirement, error) {
	r, err := s.owned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	patch.ApplyTo(r)
	if err := validateRequirement(r); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *requirementService) Delete(ctx context.Context, id, requesterID string) error {
	if _, err := s.owned(ctx, id, requesterID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "requirement not found", "delete requirement")
	}
	s.log.Info().Str("requirement_id", id).Msg("requirement deleted")
	return nil
}

func (s *requirementService) GetByID(ctx context.Context, id string) (*models.Requirement, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "requirement not found", "find requirement")
	}
	return r, nil
}

func (s *requirementService) List(ctx context.Context, q dto.RequirementListQuery) ([]models.Requirement, int64, error) {
	p := q.Pagination.Normalize()
	f := repository.RequirementFilter{
		Niche:        q.Niche,
		MinFollowers: q.MinFollowers,
		BrandID:      q.BrandID,
		Page:         repository.Page{Offset: p.Offset(), Limit: p.Limit},
	}
	if q.Status != "" {
		status, err := models.ParseRequirementStatus(q.Status)
		if err != nil {
			return nil, 0, apperrors.BadRequest(err.Error())
		}
		f.Status = status
	}
	return s.repo.List(ctx, f)
}

func (s *requirementService) owned(ctx context.Context, id, requesterID string) (*models.Requirement, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.BrandID != requesterID {
		return nil, apperrors.Forbidden("you do not own this requirement")
	}
	return r, nil
}

func validateRequirement(r *models.Requirement) error {
	if r.Title == "" {
		return apperrors.BadRequest("title is required")
	}
	if r.Niches == nil {
		r.Niches = []string{}
	}
	budgets := []struct {
		field string
		value decimal.NullDecimal
	}{{"budgetMin", r.BudgetMin}, {"budgetMax", r.BudgetMax}}
	for _, b := range budgets {
		if !b.value.Valid {
			continue
		}
		if b.value.Decimal.IsNegative() {
			return apperrors.BadRequest("budget must not be negative")
		}
		if err := models.CheckAmount(b.field, b.value.Decimal); err != nil {
			return apperrors.BadRequest(err.Error())
		}
	}
	if r.BudgetMin.Valid && r.BudgetMax.Valid && r.BudgetMax.Decimal.LessThan(r.BudgetMin.Decimal) {
		return apperrors.BadRequest("budgetMax must be greater than or equal to budgetMin")
	}
	return nil
}
