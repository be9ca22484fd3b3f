package repository

import (
	"context"
	"fmt"

	"creatorhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// CreatorFilter narrows GET /creators. Nil or empty fields are ignored.
type CreatorFilter struct {
	Niche         string
	MinFollowers  *int64
	MinEngagement *float64
	MinRating     *float64
	Search        string
	Page          Page
}

func (f CreatorFilter) scope(db *gorm.DB) *gorm.DB {
	db = containsTag(db, "niches", f.Niche)
	if f.MinFollowers != nil {
		db = db.Where("followers_count >= ?", *f.MinFollowers)
	}
	if f.MinEngagement != nil {
		db = db.Where("engagement_rate >= ?", *f.MinEngagement)
	}
	db = ratedAtLeast(db, "user_id", f.MinRating)
	return nameLike(db, "display_name", f.Search)
}

type CreatorProfileRepository interface {
	Create(ctx context.Context, p *models.CreatorProfile) error
	Update(ctx context.Context, p *models.CreatorProfile) error
	FindByID(ctx context.Context, id string) (*models.CreatorProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.CreatorProfile, error)
	List(ctx context.Context, f CreatorFilter) ([]models.CreatorProfile, int64, error)
}

type creatorProfileRepository struct {
	db *gorm.DB
}

func NewCreatorProfileRepository(db *gorm.DB) CreatorProfileRepository {
	return &creatorProfileRepository{db: db}
}

func (r *creatorProfileRepository) Create(ctx context.Context, p *models.CreatorProfile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create creator profile: %w", err)
	}
	return nil
}

func (r *creatorProfileRepository) Update(ctx context.Context, p *models.CreatorProfile) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update creator profile: %w", err)
	}
	return nil
}

func (r *creatorProfileRepository) FindByID(ctx context.Context, id string) (*models.CreatorProfile, error) {
	var p models.CreatorProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *creatorProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	var p models.CreatorProfile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns one page of matching profiles, most followed first, plus the total match count.
func (r *creatorProfileRepository) List(ctx context.Context, f CreatorFilter) ([]models.CreatorProfile, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.CreatorProfile{}).Scopes(f.scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count creator profiles: %w", err)
	}

	list := make([]models.CreatorProfile, 0)
	if err := r.db.WithContext(ctx).
		Scopes(f.scope, f.Page.scope).
		Order("followers_count DESC").
		Order("id").
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list creator profiles: %w", err)
	}
	return list, total, nil
}
