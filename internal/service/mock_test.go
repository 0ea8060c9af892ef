package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/4pillsAday/dive-globe/internal/domain"
	"github.com/4pillsAday/dive-globe/internal/dto"
	"github.com/4pillsAday/dive-globe/internal/repository"
)

// MockSiteRepository is a mock implementation of SiteRepository
type MockSiteRepository struct {
	CreateFunc       func(ctx context.Context, site *domain.DiveSite) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.DiveSite, error)
	FindBySlugFunc   func(ctx context.Context, slug string) (*domain.DiveSite, error)
	ExistsBySlugFunc func(ctx context.Context, slug string) (bool, error)
	ListFunc         func(ctx context.Context) ([]*domain.DiveSite, error)
	CountFunc        func(ctx context.Context) (int64, error)
}

func (m *MockSiteRepository) Create(ctx context.Context, site *domain.DiveSite) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, site)
	}
	return nil
}

func (m *MockSiteRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.DiveSite, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockSiteRepository) FindBySlug(ctx context.Context, slug string) (*domain.DiveSite, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockSiteRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug)
	}
	return false, nil
}

func (m *MockSiteRepository) List(ctx context.Context) ([]*domain.DiveSite, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockSiteRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	CreateFunc             func(ctx context.Context, review *domain.Review) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	FindTopLevelBySiteFunc func(ctx context.Context, siteID uuid.UUID) ([]*domain.Review, error)
	FindRepliesBySiteFunc  func(ctx context.Context, siteID uuid.UUID) ([]*domain.Review, error)
	UpdateCountsFunc       func(ctx context.Context, id uuid.UUID, likeCount, dislikeCount int64) error
	AggregateRatingsFunc   func(ctx context.Context, siteID uuid.UUID) (*repository.RatingAggregate, error)
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	review.ID = uuid.New()
	review.CreatedAt = time.Now()
	return nil
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockReviewRepository) FindTopLevelBySite(ctx context.Context, siteID uuid.UUID) ([]*domain.Review, error) {
	if m.FindTopLevelBySiteFunc != nil {
		return m.FindTopLevelBySiteFunc(ctx, siteID)
	}
	return nil, nil
}

func (m *MockReviewRepository) FindRepliesBySite(ctx context.Context, siteID uuid.UUID) ([]*domain.Review, error) {
	if m.FindRepliesBySiteFunc != nil {
		return m.FindRepliesBySiteFunc(ctx, siteID)
	}
	return nil, nil
}

func (m *MockReviewRepository) UpdateCounts(ctx context.Context, id uuid.UUID, likeCount, dislikeCount int64) error {
	if m.UpdateCountsFunc != nil {
		return m.UpdateCountsFunc(ctx, id, likeCount, dislikeCount)
	}
	return nil
}

func (m *MockReviewRepository) AggregateRatings(ctx context.Context, siteID uuid.UUID) (*repository.RatingAggregate, error) {
	if m.AggregateRatingsFunc != nil {
		return m.AggregateRatingsFunc(ctx, siteID)
	}
	return &repository.RatingAggregate{}, nil
}

func (m *MockReviewRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockReviewPhotoRepository is a mock implementation of ReviewPhotoRepository
type MockReviewPhotoRepository struct {
	CreateBatchFunc         func(ctx context.Context, photos []*domain.ReviewPhoto) error
	FindByReviewIDsFunc     func(ctx context.Context, reviewIDs []uuid.UUID) ([]*domain.ReviewPhoto, error)
	FindReferencedPathsFunc func(ctx context.Context, paths []string) ([]string, error)
}

func (m *MockReviewPhotoRepository) CreateBatch(ctx context.Context, photos []*domain.ReviewPhoto) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, photos)
	}
	return nil
}

func (m *MockReviewPhotoRepository) FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) ([]*domain.ReviewPhoto, error) {
	if m.FindByReviewIDsFunc != nil {
		return m.FindByReviewIDsFunc(ctx, reviewIDs)
	}
	return nil, nil
}

func (m *MockReviewPhotoRepository) FindReferencedPaths(ctx context.Context, paths []string) ([]string, error) {
	if m.FindReferencedPathsFunc != nil {
		return m.FindReferencedPathsFunc(ctx, paths)
	}
	return nil, nil
}

// MockPhotoUploadRepository is a mock implementation of PhotoUploadRepository
type MockPhotoUploadRepository struct {
	CreateFunc                func(ctx context.Context, upload *domain.PhotoUpload) error
	FindByStoragePathsFunc    func(ctx context.Context, paths []string) ([]*domain.PhotoUpload, error)
	FindExpiredTempFunc       func(ctx context.Context, now time.Time) ([]*domain.PhotoUpload, error)
	ConfirmByStoragePathsFunc func(ctx context.Context, uploaderID uuid.UUID, paths []string) (int64, error)
	DeleteBatchFunc           func(ctx context.Context, ids []uuid.UUID) error
}

func (m *MockPhotoUploadRepository) Create(ctx context.Context, upload *domain.PhotoUpload) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, upload)
	}
	return nil
}

func (m *MockPhotoUploadRepository) FindByStoragePaths(ctx context.Context, paths []string) ([]*domain.PhotoUpload, error) {
	if m.FindByStoragePathsFunc != nil {
		return m.FindByStoragePathsFunc(ctx, paths)
	}
	return nil, nil
}

func (m *MockPhotoUploadRepository) FindExpiredTemp(ctx context.Context, now time.Time) ([]*domain.PhotoUpload, error) {
	if m.FindExpiredTempFunc != nil {
		return m.FindExpiredTempFunc(ctx, now)
	}
	return nil, nil
}

func (m *MockPhotoUploadRepository) ConfirmByStoragePaths(ctx context.Context, uploaderID uuid.UUID, paths []string) (int64, error) {
	if m.ConfirmByStoragePathsFunc != nil {
		return m.ConfirmByStoragePathsFunc(ctx, uploaderID, paths)
	}
	return int64(len(paths)), nil
}

func (m *MockPhotoUploadRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return nil
}

// MockReactionRepository is a mock implementation of ReactionRepository
type MockReactionRepository struct {
	UpsertFunc                 func(ctx context.Context, reaction *domain.ReviewReaction) error
	DeleteFunc                 func(ctx context.Context, reviewID, userID uuid.UUID) error
	FindByReviewAndUserFunc    func(ctx context.Context, reviewID, userID uuid.UUID) (*domain.ReviewReaction, error)
	FindByUserAndReviewIDsFunc func(ctx context.Context, userID uuid.UUID, reviewIDs []uuid.UUID) ([]*domain.ReviewReaction, error)
	CountByReviewFunc          func(ctx context.Context, reviewID uuid.UUID) (*repository.ReactionCounts, error)
}

func (m *MockReactionRepository) Upsert(ctx context.Context, reaction *domain.ReviewReaction) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, reaction)
	}
	return nil
}

func (m *MockReactionRepository) Delete(ctx context.Context, reviewID, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, reviewID, userID)
	}
	return nil
}

func (m *MockReactionRepository) FindByReviewAndUser(ctx context.Context, reviewID, userID uuid.UUID) (*domain.ReviewReaction, error) {
	if m.FindByReviewAndUserFunc != nil {
		return m.FindByReviewAndUserFunc(ctx, reviewID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockReactionRepository) FindByUserAndReviewIDs(ctx context.Context, userID uuid.UUID, reviewIDs []uuid.UUID) ([]*domain.ReviewReaction, error) {
	if m.FindByUserAndReviewIDsFunc != nil {
		return m.FindByUserAndReviewIDsFunc(ctx, userID, reviewIDs)
	}
	return nil, nil
}

func (m *MockReactionRepository) CountByReview(ctx context.Context, reviewID uuid.UUID) (*repository.ReactionCounts, error) {
	if m.CountByReviewFunc != nil {
		return m.CountByReviewFunc(ctx, reviewID)
	}
	return &repository.ReactionCounts{}, nil
}

// MockSiteStatsRepository is a mock implementation of SiteStatsRepository
type MockSiteStatsRepository struct {
	UpsertFunc       func(ctx context.Context, stats *domain.SiteStats) error
	FindBySiteIDFunc func(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error)
}

func (m *MockSiteStatsRepository) Upsert(ctx context.Context, stats *domain.SiteStats) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, stats)
	}
	return nil
}

func (m *MockSiteStatsRepository) FindBySiteID(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error) {
	if m.FindBySiteIDFunc != nil {
		return m.FindBySiteIDFunc(ctx, siteID)
	}
	return nil, gorm.ErrRecordNotFound
}

// MockStatsCache is a mock implementation of StatsCache
type MockStatsCache struct {
	GetFunc        func(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error)
	SetFunc        func(ctx context.Context, stats *domain.SiteStats) error
	FillFunc       func(ctx context.Context, stats *domain.SiteStats) error
	InvalidateFunc func(ctx context.Context, siteID uuid.UUID) error
}

func (m *MockStatsCache) Get(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, siteID)
	}
	return nil, repository.ErrCacheMiss
}

func (m *MockStatsCache) Set(ctx context.Context, stats *domain.SiteStats) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, stats)
	}
	return nil
}

func (m *MockStatsCache) Fill(ctx context.Context, stats *domain.SiteStats) error {
	if m.FillFunc != nil {
		return m.FillFunc(ctx, stats)
	}
	return nil
}

func (m *MockStatsCache) Invalidate(ctx context.Context, siteID uuid.UUID) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, siteID)
	}
	return nil
}

// MockCounterService is a mock implementation of CounterService
type MockCounterService struct {
	RecomputeReviewCountsFunc func(ctx context.Context, reviewID uuid.UUID) (*dto.ReactionCounts, error)
	RecomputeSiteStatsFunc    func(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error)
	GetSiteStatsFunc          func(ctx context.Context, slug string) (*dto.SiteStatsResponse, error)
	GetStatsBySiteIDFunc      func(ctx context.Context, siteID uuid.UUID) (*dto.SiteStatsResponse, error)
}

func (m *MockCounterService) RecomputeReviewCounts(ctx context.Context, reviewID uuid.UUID) (*dto.ReactionCounts, error) {
	if m.RecomputeReviewCountsFunc != nil {
		return m.RecomputeReviewCountsFunc(ctx, reviewID)
	}
	return &dto.ReactionCounts{}, nil
}

func (m *MockCounterService) RecomputeSiteStats(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error) {
	if m.RecomputeSiteStatsFunc != nil {
		return m.RecomputeSiteStatsFunc(ctx, siteID)
	}
	return &domain.SiteStats{SiteID: siteID}, nil
}

func (m *MockCounterService) GetSiteStats(ctx context.Context, slug string) (*dto.SiteStatsResponse, error) {
	if m.GetSiteStatsFunc != nil {
		return m.GetSiteStatsFunc(ctx, slug)
	}
	return &dto.SiteStatsResponse{}, nil
}

func (m *MockCounterService) GetStatsBySiteID(ctx context.Context, siteID uuid.UUID) (*dto.SiteStatsResponse, error) {
	if m.GetStatsBySiteIDFunc != nil {
		return m.GetStatsBySiteIDFunc(ctx, siteID)
	}
	return &dto.SiteStatsResponse{}, nil
}

// recordingPublisher collects published events
type recordingPublisher struct {
	events []*dto.LiveEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event *dto.LiveEvent) {
	p.events = append(p.events, event)
}

// siteBySlug returns a FindBySlug func resolving only the given site
func siteBySlug(site *domain.DiveSite) func(ctx context.Context, slug string) (*domain.DiveSite, error) {
	return func(ctx context.Context, slug string) (*domain.DiveSite, error) {
		if slug == site.Slug {
			return site, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
}

func newTestSite(slug string) *domain.DiveSite {
	return &domain.DiveSite{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Slug:      slug,
		Name:      "Test Site",
	}
}

func intPtr(v int) *int {
	return &v
}
