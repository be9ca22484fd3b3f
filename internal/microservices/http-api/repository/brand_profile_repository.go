package repository

import (
	"context"
	"fmt"
	"strings"

	"creatorhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type BrandFilter struct {
	Category  string
	MinRating *float64
	Search    string
	Page      Page
}

func (f BrandFilter) scope(db *gorm.DB) *gorm.DB {
	if c := strings.ToLower(strings.TrimSpace(f.Category)); c != "" {
		db = db.Where("LOWER(category) = ?", c)
	}
	db = ratedAtLeast(db, "user_id", f.MinRating)
	return nameLike(db, "company_name", f.Search)
}

type BrandProfileRepository interface {
	Create(ctx context.Context, p *models.BrandProfile) error
	Update(ctx context.Context, p *models.BrandProfile) error
	FindByID(ctx context.Context, id string) (*models.BrandProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.BrandProfile, error)
	List(ctx context.Context, f BrandFilter) ([]models.BrandProfile, int64, error)
}

type brandProfileRepository struct {
	db *gorm.DB
}

func NewBrandProfileRepository(db *gorm.DB) BrandProfileRepository {
	return &brandProfileRepository{db: db}
}

func (r *brandProfileRepository) Create(ctx context.Context, p *models.BrandProfile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create brand profile: %w", err)
	}
	return nil
}

func (r *brandProfileRepository) Update(ctx context.Context, p *models.BrandProfile) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update brand profile: %w", err)
	}
	return nil
}

func (r *brandProfileRepository) FindByID(ctx context.Context, id string) (*models.BrandProfile, error) {
	var p models.BrandProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *brandProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.BrandProfile, error) {
	var p models.BrandProfile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *brandProfileRepository) List(ctx context.Context, f BrandFilter) ([]models.BrandProfile, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.BrandProfile{}).Scopes(f.scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count brand profiles: %w", err)
	}

	list := make([]models.BrandProfile, 0)
	if err := r.db.WithContext(ctx).
		Scopes(f.scope, f.Page.scope).
		Order("company_name").
		Order("id").
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list brand profiles: %w", err)
	}
	return list, total, nil
}
