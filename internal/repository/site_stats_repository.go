package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/4pillsAday/dive-globe/internal/domain"
)

// SiteStatsRepository defines the interface for the persisted site aggregates
type SiteStatsRepository interface {
	Upsert(ctx context.Context, stats *domain.SiteStats) error
	FindBySiteID(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error)
}

type siteStatsRepositoryImpl struct {
	db *gorm.DB
}

// NewSiteStatsRepository creates a new instance of SiteStatsRepository
func NewSiteStatsRepository(db *gorm.DB) SiteStatsRepository {
	return &siteStatsRepositoryImpl{db: db}
}

func (r *siteStatsRepositoryImpl) Upsert(ctx context.Context, stats *domain.SiteStats) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "site_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"avg_rating", "review_count", "updated_at"}),
		}).
		Create(stats).Error
}

// FindBySiteID returns gorm.ErrRecordNotFound for a site that never had a review
func (r *siteStatsRepositoryImpl) FindBySiteID(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error) {
	var stats domain.SiteStats
	if err := r.db.WithContext(ctx).Where("site_id = ?", siteID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
