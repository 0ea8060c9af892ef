package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/4pillsAday/dive-globe/internal/domain"
)

// SiteRepository defines the interface for dive site data access
type SiteRepository interface {
	Create(ctx context.Context, site *domain.DiveSite) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.DiveSite, error)
	FindBySlug(ctx context.Context, slug string) (*domain.DiveSite, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*domain.DiveSite, error)
	Count(ctx context.Context) (int64, error)
}

type siteRepositoryImpl struct {
	db *gorm.DB
}

// NewSiteRepository creates a new instance of SiteRepository
func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepositoryImpl{db: db}
}

func (r *siteRepositoryImpl) Create(ctx context.Context, site *domain.DiveSite) error {
	return r.db.WithContext(ctx).Create(site).Error
}

func (r *siteRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.DiveSite, error) {
	var site domain.DiveSite
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

// FindBySlug returns gorm.ErrRecordNotFound when no site has the slug
func (r *siteRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.DiveSite, error) {
	var site domain.DiveSite
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *siteRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.DiveSite{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *siteRepositoryImpl) List(ctx context.Context) ([]*domain.DiveSite, error) {
	var sites []*domain.DiveSite
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

func (r *siteRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.DiveSite{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
