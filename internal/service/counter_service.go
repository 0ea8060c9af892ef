package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/4pillsAday/dive-globe/internal/domain"
	"github.com/4pillsAday/dive-globe/internal/dto"
	"github.com/4pillsAday/dive-globe/internal/repository"
	"github.com/4pillsAday/dive-globe/internal/response"
)

// CounterService keeps the derived counters in step with their source rows.
// Every recompute is a fresh COUNT/AVG, never an increment.
type CounterService interface {
	RecomputeReviewCounts(ctx context.Context, reviewID uuid.UUID) (*dto.ReactionCounts, error)
	RecomputeSiteStats(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error)
	GetSiteStats(ctx context.Context, slug string) (*dto.SiteStatsResponse, error)
	GetStatsBySiteID(ctx context.Context, siteID uuid.UUID) (*dto.SiteStatsResponse, error)
}

type counterServiceImpl struct {
	siteRepo     repository.SiteRepository
	reviewRepo   repository.ReviewRepository
	reactionRepo repository.ReactionRepository
	statsRepo    repository.SiteStatsRepository
	cache        repository.StatsCache
	logger       *zap.Logger
}

// NewCounterService creates a new instance of CounterService
func NewCounterService(
	siteRepo repository.SiteRepository,
	reviewRepo repository.ReviewRepository,
	reactionRepo repository.ReactionRepository,
	statsRepo repository.SiteStatsRepository,
	cache repository.StatsCache,
	logger *zap.Logger,
) CounterService {
	return &counterServiceImpl{
		siteRepo:     siteRepo,
		reviewRepo:   reviewRepo,
		reactionRepo: reactionRepo,
		statsRepo:    statsRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *counterServiceImpl) RecomputeReviewCounts(ctx context.Context, reviewID uuid.UUID) (*dto.ReactionCounts, error) {
	counts, err := s.reactionRepo.CountByReview(ctx, reviewID)
	if err != nil {
		return nil, response.NewStoreError("Failed to count reactions", err)
	}

	if err := s.reviewRepo.UpdateCounts(ctx, reviewID, counts.LikeCount, counts.DislikeCount); err != nil {
		return nil, response.NewStoreError("Failed to update review counters", err)
	}

	return &dto.ReactionCounts{
		LikeCount:    counts.LikeCount,
		DislikeCount: counts.DislikeCount,
	}, nil
}

func (s *counterServiceImpl) RecomputeSiteStats(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error) {
	agg, err := s.reviewRepo.AggregateRatings(ctx, siteID)
	if err != nil {
		return nil, response.NewStoreError("Failed to aggregate ratings", err)
	}

	stats := &domain.SiteStats{
		SiteID:      siteID,
		AvgRating:   agg.AvgRating,
		ReviewCount: agg.ReviewCount,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.statsRepo.Upsert(ctx, stats); err != nil {
		return nil, response.NewStoreError("Failed to save site stats", err)
	}

	if err := s.cache.Set(ctx, stats); err != nil {
		s.logger.Warn("Failed to refresh stats cache", zap.String("site_id", siteID.String()), zap.Error(err))
		if err := s.cache.Invalidate(ctx, siteID); err != nil {
			s.logger.Warn("Failed to invalidate stats cache", zap.String("site_id", siteID.String()), zap.Error(err))
		}
	}

	return stats, nil
}

func (s *counterServiceImpl) GetSiteStats(ctx context.Context, slug string) (*dto.SiteStatsResponse, error) {
	site, err := s.siteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, siteLookupError(err)
	}
	return s.GetStatsBySiteID(ctx, site.ID)
}

// GetStatsBySiteID reads through the cache. A site with no stats row has no
// reviews yet and reports zeros.
func (s *counterServiceImpl) GetStatsBySiteID(ctx context.Context, siteID uuid.UUID) (*dto.SiteStatsResponse, error) {
	cached, err := s.cache.Get(ctx, siteID)
	if err == nil {
		return toStatsResponse(cached), nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		s.logger.Warn("Stats cache read failed", zap.String("site_id", siteID.String()), zap.Error(err))
	}

	stats, err := s.statsRepo.FindBySiteID(ctx, siteID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewStoreError("Failed to load site stats", err)
		}
		stats = &domain.SiteStats{SiteID: siteID}
	}

	if err := s.cache.Fill(ctx, stats); err != nil {
		s.logger.Warn("Stats cache write failed", zap.String("site_id", siteID.String()), zap.Error(err))
	}

	return toStatsResponse(stats), nil
}

func toStatsResponse(stats *domain.SiteStats) *dto.SiteStatsResponse {
	return &dto.SiteStatsResponse{
		AvgRating:   stats.AvgRating,
		ReviewCount: stats.ReviewCount,
	}
}

// siteLookupError maps a failed slug lookup to NotFound or StoreError
func siteLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFoundError("Dive site not found", "")
	}
	return response.NewStoreError("Failed to load dive site", err)
}
