package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/4pillsAday/dive-globe/internal/client"
	"github.com/4pillsAday/dive-globe/internal/domain"
	"github.com/4pillsAday/dive-globe/internal/metrics"
	"github.com/4pillsAday/dive-globe/internal/repository"
)

// runTimeout bounds a single cleanup pass
const runTimeout = 5 * time.Minute

// PhotoCleanupJob removes uploaded photos that were never attached to a review
type PhotoCleanupJob struct {
	uploadRepo repository.PhotoUploadRepository
	photoRepo  repository.ReviewPhotoRepository
	s3Client   client.S3ClientInterface
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewPhotoCleanupJob creates a new PhotoCleanupJob instance
func NewPhotoCleanupJob(
	uploadRepo repository.PhotoUploadRepository,
	photoRepo repository.ReviewPhotoRepository,
	s3Client client.S3ClientInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) *PhotoCleanupJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhotoCleanupJob{
		uploadRepo: uploadRepo,
		photoRepo:  photoRepo,
		s3Client:   s3Client,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// Run executes one cleanup pass. It satisfies cron.Job.
func (j *PhotoCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	j.RunContext(ctx)
}

// RunContext finds expired TEMP uploads. Uploads a review already points at
// are confirmed; the rest are deleted from S3 and then from the database.
func (j *PhotoCleanupJob) RunContext(ctx context.Context) {
	j.logger.Info("Starting cleanup job for expired photo uploads")

	expired, err := j.uploadRepo.FindExpiredTemp(ctx, j.now())
	if err != nil {
		j.logger.Error("Failed to find expired photo uploads", zap.Error(err))
		return
	}

	if len(expired) == 0 {
		j.logger.Info("No expired photo uploads found")
		return
	}

	j.logger.Info("Found expired photo uploads", zap.Int("count", len(expired)))

	referenced := j.referencedPaths(ctx, expired)

	var deletedIDs []uuid.UUID
	confirmed := 0
	failCount := 0

	for _, upload := range expired {
		if referenced[upload.StoragePath] {
			if _, err := j.uploadRepo.ConfirmByStoragePaths(ctx, upload.UploadedBy, []string{upload.StoragePath}); err != nil {
				j.logger.Warn("Failed to confirm referenced upload",
					zap.String("storage_path", upload.StoragePath),
					zap.Error(err),
				)
				failCount++
				continue
			}
			confirmed++
			continue
		}

		if err := j.s3Client.DeleteFile(ctx, upload.StoragePath); err != nil {
			j.logger.Error("Failed to delete file from S3",
				zap.String("upload_id", upload.ID.String()),
				zap.String("storage_path", upload.StoragePath),
				zap.Error(err),
			)
			failCount++
			continue
		}

		deletedIDs = append(deletedIDs, upload.ID)
		j.logger.Debug("Deleted file from S3",
			zap.String("upload_id", upload.ID.String()),
			zap.String("storage_path", upload.StoragePath),
		)
	}

	if len(deletedIDs) > 0 {
		if err := j.uploadRepo.DeleteBatch(ctx, deletedIDs); err != nil {
			j.logger.Error("Failed to delete photo uploads from database",
				zap.Int("count", len(deletedIDs)),
				zap.Error(err),
			)
		} else if j.metrics != nil {
			j.metrics.AddPhotosCleaned(len(deletedIDs))
		}
	}

	j.logger.Info("Cleanup job completed",
		zap.Int("total_expired", len(expired)),
		zap.Int("deleted", len(deletedIDs)),
		zap.Int("confirmed", confirmed),
		zap.Int("failed", failCount),
	)
}

// referencedPaths returns the subset of upload paths used by some review.
// On lookup failure every path is treated as referenced so nothing is deleted.
func (j *PhotoCleanupJob) referencedPaths(ctx context.Context, uploads []*domain.PhotoUpload) map[string]bool {
	paths := make([]string, 0, len(uploads))
	for _, u := range uploads {
		paths = append(paths, u.StoragePath)
	}

	set := make(map[string]bool, len(paths))
	found, err := j.photoRepo.FindReferencedPaths(ctx, paths)
	if err != nil {
		j.logger.Error("Failed to look up referenced photo paths", zap.Error(err))
		for _, p := range paths {
			set[p] = true
		}
		return set
	}
	for _, p := range found {
		set[p] = true
	}
	return set
}

// NewScheduler registers job on a cron scheduler. The caller starts and stops it.
func NewScheduler(schedule string, job cron.Job, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{logger: logger})))
	if _, err := c.AddJob(schedule, job); err != nil {
		return nil, err
	}
	return c, nil
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Infow(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
