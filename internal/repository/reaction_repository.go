package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/4pillsAday/dive-globe/internal/domain"
)

// ReactionCounts is the live tally of reaction rows for one review
type ReactionCounts struct {
	LikeCount    int64
	DislikeCount int64
}

// ReactionRepository defines the interface for review reaction data access
type ReactionRepository interface {
	Upsert(ctx context.Context, reaction *domain.ReviewReaction) error
	Delete(ctx context.Context, reviewID, userID uuid.UUID) error
	FindByReviewAndUser(ctx context.Context, reviewID, userID uuid.UUID) (*domain.ReviewReaction, error)
	FindByUserAndReviewIDs(ctx context.Context, userID uuid.UUID, reviewIDs []uuid.UUID) ([]*domain.ReviewReaction, error)
	CountByReview(ctx context.Context, reviewID uuid.UUID) (*ReactionCounts, error)
}

type reactionRepositoryImpl struct {
	db *gorm.DB
}

// NewReactionRepository creates a new instance of ReactionRepository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepositoryImpl{db: db}
}

// Upsert inserts the row or overwrites the reaction of an existing (review_id, user_id) row
func (r *reactionRepositoryImpl) Upsert(ctx context.Context, reaction *domain.ReviewReaction) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"reaction", "updated_at"}),
		}).
		Create(reaction).Error
}

// Delete removes the row if present; a missing row is not an error
func (r *reactionRepositoryImpl) Delete(ctx context.Context, reviewID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&domain.ReviewReaction{}).Error
}

func (r *reactionRepositoryImpl) FindByReviewAndUser(ctx context.Context, reviewID, userID uuid.UUID) (*domain.ReviewReaction, error) {
	var reaction domain.ReviewReaction
	if err := r.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		First(&reaction).Error; err != nil {
		return nil, err
	}
	return &reaction, nil
}

// FindByUserAndReviewIDs loads the viewer's reactions for a whole page in one query
func (r *reactionRepositoryImpl) FindByUserAndReviewIDs(ctx context.Context, userID uuid.UUID, reviewIDs []uuid.UUID) ([]*domain.ReviewReaction, error) {
	if len(reviewIDs) == 0 {
		return []*domain.ReviewReaction{}, nil
	}

	var reactions []*domain.ReviewReaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND review_id IN ?", userID, reviewIDs).
		Find(&reactions).Error; err != nil {
		return nil, err
	}
	return reactions, nil
}

func (r *reactionRepositoryImpl) CountByReview(ctx context.Context, reviewID uuid.UUID) (*ReactionCounts, error) {
	var rows []struct {
		Reaction domain.ReactionKind
		Total    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.ReviewReaction{}).
		Select("reaction, COUNT(*) AS total").
		Where("review_id = ?", reviewID).
		Group("reaction").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := &ReactionCounts{}
	for _, row := range rows {
		switch row.Reaction {
		case domain.ReactionLike:
			counts.LikeCount = row.Total
		case domain.ReactionDislike:
			counts.DislikeCount = row.Total
		}
	}
	return counts, nil
}
