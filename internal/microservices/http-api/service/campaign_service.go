package service

import (
	"context"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/microservices/http-api/repository"
	"creatorhub/pkg/apperrors"
	"creatorhub/pkg/logger"

	"github.com/rs/zerolog"
)

// CampaignService runs the offer workflow: pending until the creator accepts or declines.
type CampaignService interface {
	Create(ctx context.Context, brandID string, req dto.CreateCampaignRequest) (*models.Campaign, error)
	UpdateStatus(ctx context.Context, id, requesterID string, status models.CampaignStatus) (*models.Campaign, error)
	ListForUser(ctx context.Context, userID string, role models.Role) ([]models.Campaign, error)
}

type campaignService struct {
	userRepo     repository.UserRepository
	campaignRepo repository.CampaignRepository
	log          zerolog.Logger
}

func NewCampaignService(userRepo repository.UserRepository, campaignRepo repository.CampaignRepository) CampaignService {
	return &campaignService{
		userRepo:     userRepo,
		campaignRepo: campaignRepo,
		log:          logger.With("campaigns"),
	}
}

func (s *campaignService) Create(ctx context.Context, brandID string, req dto.CreateCampaignRequest) (*models.Campaign, error) {
	if !req.Budget.IsPositive() {
		return nil, apperrors.BadRequest("budget must be a positive number")
	}
	if err := models.CheckAmount("budget", req.Budget); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}
	c := req.ToModel(brandID)
	if c.Title == "" {
		return nil, apperrors.BadRequest("title is required")
	}

	creator, err := s.userRepo.FindByID(ctx, req.CreatorID)
	if err != nil {
		return nil, notFoundOr(err, "creator not found", "find creator")
	}
	if creator.Role != models.RoleCreator {
		return nil, apperrors.NotFound("creator not found")
	}

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info().Str("campaign_id", c.ID).Str("brand_id", brandID).Str("creator_id", c.CreatorID).Msg("campaign created")
	return c, nil
}

// UpdateStatus lets the addressed creator accept or decline. The latest decision wins.
func (s *campaignService) UpdateStatus(ctx context.Context, id, requesterID string, status models.CampaignStatus) (*models.Campaign, error) {
	decision, err := models.ParseCampaignDecision(string(status))
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	c, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "campaign not found", "find campaign")
	}
	if c.CreatorID != requesterID {
		return nil, apperrors.Forbidden("only the addressed creator can respond to this campaign")
	}

	if err := s.campaignRepo.UpdateStatus(ctx, c, decision); err != nil {
		return nil, err
	}
	c.Status = decision

	s.log.Info().Str("campaign_id", c.ID).Str("status", string(decision)).Msg("campaign status changed")
	return c, nil
}

func (s *campaignService) ListForUser(ctx context.Context, userID string, role models.Role) ([]models.Campaign, error) {
	switch role {
	case models.RoleBrand:
		return s.campaignRepo.ListByBrand(ctx, userID)
	case models.RoleCreator:
		return s.campaignRepo.ListByCreator(ctx, userID)
	default:
		return nil, apperrors.Forbidden("unknown role")
	}
}
