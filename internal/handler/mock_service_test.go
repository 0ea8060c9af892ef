package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/4pillsAday/dive-globe/internal/domain"
	"github.com/4pillsAday/dive-globe/internal/dto"
	"github.com/4pillsAday/dive-globe/internal/service"
	"github.com/4pillsAday/dive-globe/internal/util"
)

// MockReviewService is a mock implementation of ReviewService
type MockReviewService struct {
	ListTopLevelFunc func(ctx context.Context, slug string, viewerID *uuid.UUID) ([]*dto.ReviewResponse, error)
	CreateFunc       func(ctx context.Context, slug string, authorID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
}

func (m *MockReviewService) ListTopLevel(ctx context.Context, slug string, viewerID *uuid.UUID) ([]*dto.ReviewResponse, error) {
	if m.ListTopLevelFunc != nil {
		return m.ListTopLevelFunc(ctx, slug, viewerID)
	}
	return []*dto.ReviewResponse{}, nil
}

func (m *MockReviewService) Create(ctx context.Context, slug string, authorID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, slug, authorID, req)
	}
	return nil, nil
}

// MockReactionService is a mock implementation of ReactionService
type MockReactionService struct {
	SetReactionFunc   func(ctx context.Context, slug string, reviewID, userID uuid.UUID, reaction string) (*dto.ReactionResponse, error)
	ClearReactionFunc func(ctx context.Context, reviewID, userID uuid.UUID) (*dto.ReactionCountsResponse, error)
}

func (m *MockReactionService) SetReaction(ctx context.Context, slug string, reviewID, userID uuid.UUID, reaction string) (*dto.ReactionResponse, error) {
	if m.SetReactionFunc != nil {
		return m.SetReactionFunc(ctx, slug, reviewID, userID, reaction)
	}
	return nil, nil
}

func (m *MockReactionService) ClearReaction(ctx context.Context, reviewID, userID uuid.UUID) (*dto.ReactionCountsResponse, error) {
	if m.ClearReactionFunc != nil {
		return m.ClearReactionFunc(ctx, reviewID, userID)
	}
	return nil, nil
}

// MockSiteService is a mock implementation of SiteService
type MockSiteService struct {
	ListFunc     func(ctx context.Context) ([]*dto.SiteResponse, error)
	GetFunc      func(ctx context.Context, slug string) (*dto.SiteDetailResponse, error)
	LookupFunc   func(ctx context.Context, slug string) (*dto.SiteResponse, error)
	CheckFunc    func(ctx context.Context) (*dto.CheckResponse, error)
	PopulateFunc func(ctx context.Context) (*dto.PopulateResponse, error)
}

func (m *MockSiteService) List(ctx context.Context) ([]*dto.SiteResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*dto.SiteResponse{}, nil
}

func (m *MockSiteService) Get(ctx context.Context, slug string) (*dto.SiteDetailResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockSiteService) Lookup(ctx context.Context, slug string) (*dto.SiteResponse, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockSiteService) Check(ctx context.Context) (*dto.CheckResponse, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx)
	}
	return nil, nil
}

func (m *MockSiteService) Populate(ctx context.Context) (*dto.PopulateResponse, error) {
	if m.PopulateFunc != nil {
		return m.PopulateFunc(ctx)
	}
	return nil, nil
}

// MockCounterService is a mock implementation of CounterService
type MockCounterService struct {
	GetSiteStatsFunc func(ctx context.Context, slug string) (*dto.SiteStatsResponse, error)
}

func (m *MockCounterService) RecomputeReviewCounts(ctx context.Context, reviewID uuid.UUID) (*dto.ReactionCounts, error) {
	return &dto.ReactionCounts{}, nil
}

func (m *MockCounterService) RecomputeSiteStats(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error) {
	return &domain.SiteStats{SiteID: siteID}, nil
}

func (m *MockCounterService) GetSiteStats(ctx context.Context, slug string) (*dto.SiteStatsResponse, error) {
	if m.GetSiteStatsFunc != nil {
		return m.GetSiteStatsFunc(ctx, slug)
	}
	return &dto.SiteStatsResponse{}, nil
}

func (m *MockCounterService) GetStatsBySiteID(ctx context.Context, siteID uuid.UUID) (*dto.SiteStatsResponse, error) {
	return &dto.SiteStatsResponse{}, nil
}

// MockPhotoService is a mock implementation of PhotoService
type MockPhotoService struct {
	UploadFunc func(ctx context.Context, slug string, uploaderID uuid.UUID, file *service.PhotoFile) (*dto.PhotoUploadResponse, error)
}

func (m *MockPhotoService) Upload(ctx context.Context, slug string, uploaderID uuid.UUID, file *service.PhotoFile) (*dto.PhotoUploadResponse, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, slug, uploaderID, file)
	}
	return nil, nil
}

// MockIdentityProvider is a mock implementation of IdentityProvider
type MockIdentityProvider struct {
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, error)
	SignOutFunc       func(ctx context.Context, token string) error
}

func (m *MockIdentityProvider) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return uuid.Nil, nil
}

func (m *MockIdentityProvider) SignOut(ctx context.Context, token string) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, token)
	}
	return nil
}

// setupTestRouter creates a gin engine in test mode with the custom validators
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	util.RegisterValidators()
	return gin.New()
}

// withViewer simulates the auth middleware for an authenticated caller
func withViewer(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(util.UserIDKey, id)
		c.Next()
	}
}
