package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/4pillsAday/dive-globe/internal/client"
	"github.com/4pillsAday/dive-globe/internal/domain"
	"github.com/4pillsAday/dive-globe/internal/dto"
	"github.com/4pillsAday/dive-globe/internal/metrics"
	"github.com/4pillsAday/dive-globe/internal/repository"
	"github.com/4pillsAday/dive-globe/internal/response"
)

// Body length limits, counted in characters
const (
	MaxReviewBodyLength = 2000
	MaxReplyBodyLength  = 500
	MaxPhotosPerReview  = 10
)

// ReviewService defines the interface for review business logic
type ReviewService interface {
	ListTopLevel(ctx context.Context, slug string, viewerID *uuid.UUID) ([]*dto.ReviewResponse, error)
	Create(ctx context.Context, slug string, authorID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
}

// ReviewServiceDeps groups the collaborators of the review service
type ReviewServiceDeps struct {
	SiteRepo     repository.SiteRepository
	ReviewRepo   repository.ReviewRepository
	PhotoRepo    repository.ReviewPhotoRepository
	UploadRepo   repository.PhotoUploadRepository
	ReactionRepo repository.ReactionRepository
	Counters     CounterService
	Events       EventPublisher
	PhotoURL     func(storagePath string) string
	Metrics      *metrics.Metrics
	Logger       *zap.Logger
}

type reviewServiceImpl struct {
	ReviewServiceDeps
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(deps ReviewServiceDeps) ReviewService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &reviewServiceImpl{ReviewServiceDeps: deps}
}

// ListTopLevel returns the site's review tree with a constant number of
// queries: site, top-level reviews, replies, photos and viewer reactions.
func (s *reviewServiceImpl) ListTopLevel(ctx context.Context, slug string, viewerID *uuid.UUID) ([]*dto.ReviewResponse, error) {
	site, err := s.SiteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, siteLookupError(err)
	}

	topLevel, err := s.ReviewRepo.FindTopLevelBySite(ctx, site.ID)
	if err != nil {
		return nil, response.NewStoreError("Failed to load reviews", err)
	}
	if len(topLevel) == 0 {
		return []*dto.ReviewResponse{}, nil
	}

	replies, err := s.ReviewRepo.FindRepliesBySite(ctx, site.ID)
	if err != nil {
		return nil, response.NewStoreError("Failed to load replies", err)
	}

	ids := reviewIDs(topLevel, replies)

	photos, err := s.PhotoRepo.FindByReviewIDs(ctx, ids)
	if err != nil {
		return nil, response.NewStoreError("Failed to load review photos", err)
	}

	var reactions []*domain.ReviewReaction
	if viewerID != nil && *viewerID != uuid.Nil {
		reactions, err = s.ReactionRepo.FindByUserAndReviewIDs(ctx, *viewerID, ids)
		if err != nil {
			return nil, response.NewStoreError("Failed to load reactions", err)
		}
	}

	return assembleThreads(topLevel, replies, photos, reactions, s.PhotoURL), nil
}

func (s *reviewServiceImpl) Create(ctx context.Context, slug string, authorID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if authorID == uuid.Nil {
		return nil, response.NewUnauthorizedError("Authentication required")
	}

	site, err := s.SiteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, siteLookupError(err)
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, response.NewValidationError("Review body is required", "")
	}

	review := &domain.Review{
		SiteID:   site.ID,
		AuthorID: authorID,
		Body:     body,
	}

	maxLength := MaxReviewBodyLength
	if req.ParentReviewID == nil {
		if req.Rating == nil || *req.Rating < 1 || *req.Rating > 5 {
			return nil, response.NewValidationError("Rating must be between 1 and 5", "")
		}
		review.Rating = *req.Rating
	} else {
		parent, err := s.findParent(ctx, site.ID, *req.ParentReviewID)
		if err != nil {
			return nil, err
		}
		parentID := parent.ID
		review.ParentReviewID = &parentID
		review.ThreadDepth = parent.ThreadDepth + 1
		maxLength = MaxReplyBodyLength
	}

	if n := utf8.RuneCountInString(body); n > maxLength {
		return nil, response.NewValidationError(
			fmt.Sprintf("Review body must be at most %d characters", maxLength),
			fmt.Sprintf("got %d characters", n),
		)
	}

	paths := s.normalizePhotoPaths(authorID, req.PhotoPaths())

	if err := s.ReviewRepo.Create(ctx, review); err != nil {
		return nil, response.NewStoreError("Failed to create review", err)
	}

	photos := s.attachPhotos(ctx, review, paths)

	if _, err := s.Counters.RecomputeSiteStats(ctx, site.ID); err != nil {
		// the review is already stored; stats catch up on the next insert
		s.Logger.Error("Failed to recompute site stats after review insert",
			zap.String("site_id", site.ID.String()),
			zap.String("review_id", review.ID.String()),
			zap.Error(err),
		)
	}

	s.recordCreated(review)

	resp := toReviewResponse(review, photos, nil, s.PhotoURL)
	if s.Events != nil {
		s.Events.Publish(ctx, &dto.LiveEvent{
			Type:       dto.EventReviewCreated,
			SiteID:     site.ID,
			ReviewID:   review.ID,
			Review:     resp,
			OccurredAt: time.Now().UTC(),
		})
	}

	return resp, nil
}

// findParent validates the reply target: it must exist, sit on the same site
// and leave room for one more level.
func (s *reviewServiceImpl) findParent(ctx context.Context, siteID, parentID uuid.UUID) (*domain.Review, error) {
	parent, err := s.ReviewRepo.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewValidationError("Parent review not found", parentID.String())
		}
		return nil, response.NewStoreError("Failed to load parent review", err)
	}

	if parent.SiteID != siteID {
		return nil, response.NewValidationError("Parent review belongs to a different dive site", "")
	}

	if parent.ThreadDepth >= domain.MaxThreadDepth {
		return nil, response.NewValidationError("Maximum reply depth reached", "")
	}

	return parent, nil
}

// attachPhotos stores photo references for a new review. Failures are logged
// and swallowed: the review is kept even when its photos are not.
func (s *reviewServiceImpl) attachPhotos(ctx context.Context, review *domain.Review, paths []string) []*domain.ReviewPhoto {
	if len(paths) == 0 {
		return nil
	}

	photos := make([]*domain.ReviewPhoto, 0, len(paths))
	for _, p := range paths {
		photos = append(photos, &domain.ReviewPhoto{ReviewID: review.ID, StoragePath: p})
	}

	if err := s.PhotoRepo.CreateBatch(ctx, photos); err != nil {
		s.Logger.Error("Failed to save review photos",
			zap.String("review_id", review.ID.String()),
			zap.Int("count", len(photos)),
			zap.Error(err),
		)
		return nil
	}

	if s.UploadRepo != nil {
		confirmed, err := s.UploadRepo.ConfirmByStoragePaths(ctx, review.AuthorID, paths)
		if err != nil {
			s.Logger.Warn("Failed to confirm photo uploads",
				zap.String("review_id", review.ID.String()),
				zap.Error(err),
			)
		} else if confirmed < int64(len(paths)) {
			s.Logger.Debug("Some photos had no pending upload record",
				zap.String("review_id", review.ID.String()),
				zap.Int64("confirmed", confirmed),
				zap.Int("attached", len(paths)),
			)
		}
	}

	return photos
}

func (s *reviewServiceImpl) recordCreated(review *domain.Review) {
	if s.Metrics == nil {
		return
	}
	if review.IsTopLevel() {
		s.Metrics.IncrementReviewCreated(metrics.ReviewKindTopLevel)
	} else {
		s.Metrics.IncrementReviewCreated(metrics.ReviewKindReply)
	}
}

// normalizePhotoPaths trims and de-duplicates storage paths. Paths relative
// to the photo folder get the folder prefix. Entries that cannot be a photo
// key are dropped so a bad attachment never blocks the review.
func (s *reviewServiceImpl) normalizePhotoPaths(authorID uuid.UUID, paths []string) []string {
	seen := make(map[string]bool, len(paths))
	result := make([]string, 0, len(paths))
	for _, raw := range paths {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, client.PhotoKeyPrefix+"/") {
			p = client.PhotoKeyPrefix + "/" + p
		}
		if strings.Contains(p, "..") || strings.Contains(p, "//") {
			s.Logger.Warn("Dropping invalid photo path",
				zap.String("author_id", authorID.String()),
				zap.String("path", raw),
			)
			continue
		}
		if seen[p] {
			continue
		}
		if len(result) == MaxPhotosPerReview {
			s.Logger.Warn("Dropping photos over the per-review limit",
				zap.String("author_id", authorID.String()),
				zap.Int("limit", MaxPhotosPerReview),
				zap.Int("received", len(paths)),
			)
			break
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}
