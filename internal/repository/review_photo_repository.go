package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/4pillsAday/dive-globe/internal/domain"
)

// ReviewPhotoRepository defines the interface for review photo references
type ReviewPhotoRepository interface {
	CreateBatch(ctx context.Context, photos []*domain.ReviewPhoto) error
	FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) ([]*domain.ReviewPhoto, error)
	FindReferencedPaths(ctx context.Context, paths []string) ([]string, error)
}

type reviewPhotoRepositoryImpl struct {
	db *gorm.DB
}

// NewReviewPhotoRepository creates a new instance of ReviewPhotoRepository
func NewReviewPhotoRepository(db *gorm.DB) ReviewPhotoRepository {
	return &reviewPhotoRepositoryImpl{db: db}
}

func (r *reviewPhotoRepositoryImpl) CreateBatch(ctx context.Context, photos []*domain.ReviewPhoto) error {
	if len(photos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&photos).Error
}

func (r *reviewPhotoRepositoryImpl) FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) ([]*domain.ReviewPhoto, error) {
	if len(reviewIDs) == 0 {
		return []*domain.ReviewPhoto{}, nil
	}

	var photos []*domain.ReviewPhoto
	if err := r.db.WithContext(ctx).
		Where("review_id IN ?", reviewIDs).
		Order("created_at ASC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// FindReferencedPaths returns the subset of paths that some review points at
func (r *reviewPhotoRepositoryImpl) FindReferencedPaths(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return []string{}, nil
	}

	var referenced []string
	if err := r.db.WithContext(ctx).
		Model(&domain.ReviewPhoto{}).
		Distinct("storage_path").
		Where("storage_path IN ?", paths).
		Pluck("storage_path", &referenced).Error; err != nil {
		return nil, err
	}
	return referenced, nil
}
