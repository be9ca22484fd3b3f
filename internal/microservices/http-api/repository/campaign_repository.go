package repository

import (
	"context"
	"fmt"

	"creatorhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CampaignRepository interface {
	Create(ctx context.Context, c *models.Campaign) error
	FindByID(ctx context.Context, id string) (*models.Campaign, error)
	UpdateStatus(ctx context.Context, c *models.Campaign, status models.CampaignStatus) error
	ListByBrand(ctx context.Context, brandID string) ([]models.Campaign, error)
	ListByCreator(ctx context.Context, creatorID string) ([]models.Campaign, error)
}

type campaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, c *models.Campaign) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) FindByID(ctx context.Context, id string) (*models.Campaign, error) {
	var c models.Campaign
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateStatus overwrites the status; the latest write wins.
func (r *campaignRepository) UpdateStatus(ctx context.Context, c *models.Campaign, status models.CampaignStatus) error {
	if err := r.db.WithContext(ctx).Model(c).Update("status", status).Error; err != nil {
		return fmt.Errorf("update campaign status: %w", err)
	}
	return nil
}

func (r *campaignRepository) ListByBrand(ctx context.Context, brandID string) ([]models.Campaign, error) {
	return r.list(ctx, "brand_id = ?", brandID)
}

func (r *campaignRepository) ListByCreator(ctx context.Context, creatorID string) ([]models.Campaign, error) {
	return r.list(ctx, "creator_id = ?", creatorID)
}

func (r *campaignRepository) list(ctx context.Context, cond string, arg string) ([]models.Campaign, error) {
	list := make([]models.Campaign, 0)
	err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return list, nil
}
