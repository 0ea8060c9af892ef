package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/4pillsAday/dive-globe/internal/domain"
)

// PhotoUploadRepository defines the interface for photo upload tracking
type PhotoUploadRepository interface {
	Create(ctx context.Context, upload *domain.PhotoUpload) error
	FindByStoragePaths(ctx context.Context, paths []string) ([]*domain.PhotoUpload, error)
	FindExpiredTemp(ctx context.Context, now time.Time) ([]*domain.PhotoUpload, error)
	ConfirmByStoragePaths(ctx context.Context, uploaderID uuid.UUID, paths []string) (int64, error)
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error
}

type photoUploadRepositoryImpl struct {
	db *gorm.DB
}

// NewPhotoUploadRepository creates a new instance of PhotoUploadRepository
func NewPhotoUploadRepository(db *gorm.DB) PhotoUploadRepository {
	return &photoUploadRepositoryImpl{db: db}
}

func (r *photoUploadRepositoryImpl) Create(ctx context.Context, upload *domain.PhotoUpload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

func (r *photoUploadRepositoryImpl) FindByStoragePaths(ctx context.Context, paths []string) ([]*domain.PhotoUpload, error) {
	if len(paths) == 0 {
		return []*domain.PhotoUpload{}, nil
	}

	var uploads []*domain.PhotoUpload
	if err := r.db.WithContext(ctx).
		Where("storage_path IN ?", paths).
		Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

// FindExpiredTemp finds TEMP uploads whose expiry is before now
func (r *photoUploadRepositoryImpl) FindExpiredTemp(ctx context.Context, now time.Time) ([]*domain.PhotoUpload, error) {
	var uploads []*domain.PhotoUpload
	if err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", domain.UploadStatusTemp, now).
		Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

// ConfirmByStoragePaths marks the uploader's TEMP uploads as CONFIRMED and
// returns how many rows changed. Paths uploaded by someone else are left alone.
func (r *photoUploadRepositoryImpl) ConfirmByStoragePaths(ctx context.Context, uploaderID uuid.UUID, paths []string) (int64, error) {
	if len(paths) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&domain.PhotoUpload{}).
		Where("storage_path IN ? AND uploaded_by = ? AND status = ?", paths, uploaderID, domain.UploadStatusTemp).
		Updates(map[string]interface{}{
			"status":     domain.UploadStatusConfirmed,
			"expires_at": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *photoUploadRepositoryImpl) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.PhotoUpload{}).Error
}
