package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/4pillsAday/dive-globe/internal/domain"
)

// RatingAggregate is the raw AVG/COUNT over the top-level reviews of a site
type RatingAggregate struct {
	AvgRating   float64
	ReviewCount int64
}

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	FindTopLevelBySite(ctx context.Context, siteID uuid.UUID) ([]*domain.Review, error)
	FindRepliesBySite(ctx context.Context, siteID uuid.UUID) ([]*domain.Review, error)
	UpdateCounts(ctx context.Context, id uuid.UUID, likeCount, dislikeCount int64) error
	AggregateRatings(ctx context.Context, siteID uuid.UUID) (*RatingAggregate, error)
	Count(ctx context.Context) (int64, error)
}

type reviewRepositoryImpl struct {
	db *gorm.DB
}

// NewReviewRepository creates a new instance of ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

func (r *reviewRepositoryImpl) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindTopLevelBySite returns the site's reviews without a parent, newest first
func (r *reviewRepositoryImpl) FindTopLevelBySite(ctx context.Context, siteID uuid.UUID) ([]*domain.Review, error) {
	var reviews []*domain.Review
	if err := r.db.WithContext(ctx).
		Where("site_id = ? AND parent_review_id IS NULL", siteID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindRepliesBySite returns every reply of the site at any depth, oldest first
func (r *reviewRepositoryImpl) FindRepliesBySite(ctx context.Context, siteID uuid.UUID) ([]*domain.Review, error) {
	var reviews []*domain.Review
	if err := r.db.WithContext(ctx).
		Where("site_id = ? AND parent_review_id IS NOT NULL", siteID).
		Order("created_at ASC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepositoryImpl) UpdateCounts(ctx context.Context, id uuid.UUID, likeCount, dislikeCount int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"like_count":    likeCount,
			"dislike_count": dislikeCount,
		}).Error
}

// AggregateRatings averages top-level ratings only; replies carry rating 0
func (r *reviewRepositoryImpl) AggregateRatings(ctx context.Context, siteID uuid.UUID) (*RatingAggregate, error) {
	var agg RatingAggregate
	if err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Where("site_id = ? AND parent_review_id IS NULL", siteID).
		Scan(&agg).Error; err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *reviewRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Review{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
