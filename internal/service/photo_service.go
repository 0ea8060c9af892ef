package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/4pillsAday/dive-globe/internal/client"
	"github.com/4pillsAday/dive-globe/internal/domain"
	"github.com/4pillsAday/dive-globe/internal/dto"
	"github.com/4pillsAday/dive-globe/internal/metrics"
	"github.com/4pillsAday/dive-globe/internal/repository"
	"github.com/4pillsAday/dive-globe/internal/response"
)

// MaxPhotoSize is the largest accepted review photo (10MB)
const MaxPhotoSize = 10 * 1024 * 1024

var (
	AllowedPhotoTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
		"image/heic": true, // iPhone
	}

	AllowedPhotoExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
		".heic": true,
	}
)

// PhotoFile is an uploaded file as read from the request
type PhotoFile struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// PhotoService defines the interface for review photo uploads
type PhotoService interface {
	Upload(ctx context.Context, slug string, uploaderID uuid.UUID, file *PhotoFile) (*dto.PhotoUploadResponse, error)
}

type photoServiceImpl struct {
	siteRepo   repository.SiteRepository
	uploadRepo repository.PhotoUploadRepository
	s3Client   client.S3ClientInterface
	uploadTTL  time.Duration
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewPhotoService creates a new instance of PhotoService. Uploads not attached
// to a review within uploadTTL are removed by the cleanup job.
func NewPhotoService(
	siteRepo repository.SiteRepository,
	uploadRepo repository.PhotoUploadRepository,
	s3Client client.S3ClientInterface,
	uploadTTL time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) PhotoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &photoServiceImpl{
		siteRepo:   siteRepo,
		uploadRepo: uploadRepo,
		s3Client:   s3Client,
		uploadTTL:  uploadTTL,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *photoServiceImpl) Upload(ctx context.Context, slug string, uploaderID uuid.UUID, file *PhotoFile) (*dto.PhotoUploadResponse, error) {
	if uploaderID == uuid.Nil {
		return nil, response.NewUnauthorizedError("Authentication required")
	}

	if s.s3Client == nil {
		return nil, response.NewAppError(response.ErrCodeUnavailable, "Photo storage is not configured", "")
	}

	if err := validatePhoto(file); err != nil {
		return nil, err
	}

	if _, err := s.siteRepo.FindBySlug(ctx, slug); err != nil {
		return nil, siteLookupError(err)
	}

	now := s.now().UTC()
	key := s.s3Client.GenerateFileKey(uploaderID, file.Name, now)
	contentType := strings.ToLower(file.ContentType)

	url, err := s.s3Client.UploadFile(ctx, key, file.Content, contentType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload photo", err.Error())
	}

	expiresAt := now.Add(s.uploadTTL)
	upload := &domain.PhotoUpload{
		StoragePath: key,
		Status:      domain.UploadStatusTemp,
		FileName:    file.Name,
		FileSize:    file.Size,
		ContentType: contentType,
		UploadedBy:  uploaderID,
		ExpiresAt:   &expiresAt,
	}
	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		// without a tracking row the object would never be cleaned up
		if delErr := s.s3Client.DeleteFile(ctx, key); delErr != nil {
			s.logger.Warn("Failed to remove untracked photo", zap.String("key", key), zap.Error(delErr))
		}
		return nil, response.NewStoreError("Failed to record photo upload", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementPhotoUploads()
	}

	s.logger.Info("Photo uploaded",
		zap.String("key", key),
		zap.String("uploader_id", uploaderID.String()),
		zap.Int64("size", file.Size),
	)

	return &dto.PhotoUploadResponse{
		StoragePath: key,
		PublicURL:   url,
		FileName:    file.Name,
		FileSize:    file.Size,
		ContentType: contentType,
	}, nil
}

func validatePhoto(file *PhotoFile) error {
	if file == nil || file.Content == nil {
		return response.NewValidationError("File is required", "")
	}
	if strings.TrimSpace(file.Name) == "" {
		return response.NewValidationError("File name is required", "")
	}
	if file.Size <= 0 {
		return response.NewValidationError("File is empty", "")
	}
	if file.Size > MaxPhotoSize {
		return response.NewValidationError(
			"File too large",
			fmt.Sprintf("maximum size is %d bytes", MaxPhotoSize),
		)
	}
	if !AllowedPhotoTypes[strings.ToLower(file.ContentType)] {
		return response.NewValidationError("Unsupported file type", file.ContentType)
	}
	if ext := strings.ToLower(filepath.Ext(file.Name)); !AllowedPhotoExtensions[ext] {
		return response.NewValidationError("Unsupported file extension", ext)
	}
	return nil
}
