package repository

import (
	"context"
	"fmt"

	"creatorhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type RequirementFilter struct {
	Niche        string
	MinFollowers *int64
	Status       models.RequirementStatus
	BrandID      string
	Page         Page
}

func (f RequirementFilter) scope(db *gorm.DB) *gorm.DB {
	db = containsTag(db, "niches", f.Niche)
	if f.MinFollowers != nil {
		db = db.Where("min_followers >= ?", *f.MinFollowers)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.BrandID != "" {
		db = db.Where("brand_id = ?", f.BrandID)
	}
	return db
}

type RequirementRepository interface {
	Create(ctx context.Context, req *models.Requirement) error
	Update(ctx context.Context, req *models.Requirement) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Requirement, error)
	List(ctx context.Context, f RequirementFilter) ([]models.Requirement, int64, error)
}

type requirementRepository struct {
	db *gorm.DB
}

func NewRequirementRepository(db *gorm.DB) RequirementRepository {
	return &requirementRepository{db: db}
}

func (r *requirementRepository) Create(ctx context.Context, req *models.Requirement) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("create requirement: %w", err)
	}
	return nil
}

func (r *requirementRepository) Update(ctx context.Context, req *models.Requirement) error {
	if err := r.db.WithContext(ctx).Save(req).Error; err != nil {
		return fmt.Errorf("update requirement: %w", err)
	}
	return nil
}

func (r *requirementRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Requirement{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete requirement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *requirementRepository) FindByID(ctx context.Context, id string) (*models.Requirement, error) {
	var req models.Requirement
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// List returns one page of matching requirements, newest first.
func (r *requirementRepository) List(ctx context.Context, f RequirementFilter) ([]models.Requirement, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Requirement{}).Scopes(f.scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count requirements: %w", err)
	}

	list := make([]models.Requirement, 0)
	if err := r.db.WithContext(ctx).
		Scopes(f.scope, f.Page.scope).
		Order("created_at DESC").
		Order("id").
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list requirements: %w", err)
	}
	return list, total, nil
}
