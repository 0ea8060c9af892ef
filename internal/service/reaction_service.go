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
	"github.com/4pillsAday/dive-globe/internal/metrics"
	"github.com/4pillsAday/dive-globe/internal/repository"
	"github.com/4pillsAday/dive-globe/internal/response"
)

// Reaction actions recorded in metrics
const (
	reactionActionSet   = "set"
	reactionActionClear = "clear"
)

// ReactionService defines the interface for reaction business logic.
// Setting the same reaction twice is idempotent; switching replaces the row.
// Clearing is always an explicit call, never inferred from a repeated set.
type ReactionService interface {
	SetReaction(ctx context.Context, slug string, reviewID, userID uuid.UUID, reaction string) (*dto.ReactionResponse, error)
	ClearReaction(ctx context.Context, reviewID, userID uuid.UUID) (*dto.ReactionCountsResponse, error)
}

type reactionServiceImpl struct {
	siteRepo     repository.SiteRepository
	reviewRepo   repository.ReviewRepository
	reactionRepo repository.ReactionRepository
	counters     CounterService
	events       EventPublisher
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewReactionService creates a new instance of ReactionService
func NewReactionService(
	siteRepo repository.SiteRepository,
	reviewRepo repository.ReviewRepository,
	reactionRepo repository.ReactionRepository,
	counters CounterService,
	events EventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) ReactionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reactionServiceImpl{
		siteRepo:     siteRepo,
		reviewRepo:   reviewRepo,
		reactionRepo: reactionRepo,
		counters:     counters,
		events:       events,
		metrics:      m,
		logger:       logger,
	}
}

func (s *reactionServiceImpl) SetReaction(ctx context.Context, slug string, reviewID, userID uuid.UUID, reaction string) (*dto.ReactionResponse, error) {
	if userID == uuid.Nil {
		return nil, response.NewUnauthorizedError("Authentication required")
	}

	kind := domain.ReactionKind(reaction)
	if !kind.IsValid() {
		return nil, response.NewValidationError("Reaction must be like or dislike", reaction)
	}

	site, err := s.siteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, siteLookupError(err)
	}

	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.SiteID != site.ID {
		return nil, response.NewNotFoundError("Review not found", "")
	}

	if review.AuthorID == userID {
		return nil, response.NewValidationError("You cannot react to your own review", "")
	}

	if err := s.reactionRepo.Upsert(ctx, &domain.ReviewReaction{
		ReviewID: reviewID,
		UserID:   userID,
		Reaction: kind,
	}); err != nil {
		return nil, response.NewStoreError("Failed to save reaction", err)
	}

	counts, err := s.counters.RecomputeReviewCounts(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementReaction(reactionActionSet)
	}
	s.publish(ctx, review.SiteID, reviewID, counts)

	return &dto.ReactionResponse{
		Reaction: string(kind),
		Counts:   *counts,
	}, nil
}

func (s *reactionServiceImpl) ClearReaction(ctx context.Context, reviewID, userID uuid.UUID) (*dto.ReactionCountsResponse, error) {
	if userID == uuid.Nil {
		return nil, response.NewUnauthorizedError("Authentication required")
	}

	if err := s.reactionRepo.Delete(ctx, reviewID, userID); err != nil {
		return nil, response.NewStoreError("Failed to remove reaction", err)
	}

	counts, err := s.counters.RecomputeReviewCounts(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementReaction(reactionActionClear)
	}

	// the site id is only needed to route the live event
	if review, err := s.reviewRepo.FindByID(ctx, reviewID); err == nil {
		s.publish(ctx, review.SiteID, reviewID, counts)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("Failed to load review for live event", zap.String("review_id", reviewID.String()), zap.Error(err))
	}

	return &dto.ReactionCountsResponse{Counts: *counts}, nil
}

func (s *reactionServiceImpl) findReview(ctx context.Context, reviewID uuid.UUID) (*domain.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Review not found", "")
		}
		return nil, response.NewStoreError("Failed to load review", err)
	}
	return review, nil
}

func (s *reactionServiceImpl) publish(ctx context.Context, siteID, reviewID uuid.UUID, counts *dto.ReactionCounts) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, &dto.LiveEvent{
		Type:       dto.EventReactionUpdated,
		SiteID:     siteID,
		ReviewID:   reviewID,
		Counts:     counts,
		OccurredAt: time.Now().UTC(),
	})
}
