package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/4pillsAday/dive-globe/internal/domain"
)

func TestReactionRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	reviewID := uuid.New()
	userID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: reviewID, UserID: userID, Reaction: domain.ReactionLike}))
	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: reviewID, UserID: userID, Reaction: domain.ReactionDislike}))

	var count int64
	require.NoError(t, db.Model(&domain.ReviewReaction{}).Where("review_id = ?", reviewID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "one row per (review, user)")

	found, err := repo.FindByReviewAndUser(ctx, reviewID, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionDislike, found.Reaction)
}

func TestReactionRepository_CountByReview(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	reviewID := uuid.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: reviewID, UserID: uuid.New(), Reaction: domain.ReactionLike}))
	}
	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: reviewID, UserID: uuid.New(), Reaction: domain.ReactionDislike}))
	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: uuid.New(), UserID: uuid.New(), Reaction: domain.ReactionLike}))

	counts, err := repo.CountByReview(ctx, reviewID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.LikeCount)
	assert.Equal(t, int64(1), counts.DislikeCount)

	empty, err := repo.CountByReview(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.LikeCount)
	assert.Equal(t, int64(0), empty.DislikeCount)
}

func TestReactionRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	reviewID := uuid.New()
	userID := uuid.New()
	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: reviewID, UserID: userID, Reaction: domain.ReactionLike}))

	require.NoError(t, repo.Delete(ctx, reviewID, userID))
	_, err := repo.FindByReviewAndUser(ctx, reviewID, userID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// deleting again is not an error
	assert.NoError(t, repo.Delete(ctx, reviewID, userID))
}

func TestReactionRepository_FindByUserAndReviewIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	viewer := uuid.New()
	liked := uuid.New()
	disliked := uuid.New()
	untouched := uuid.New()

	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: liked, UserID: viewer, Reaction: domain.ReactionLike}))
	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: disliked, UserID: viewer, Reaction: domain.ReactionDislike}))
	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: untouched, UserID: uuid.New(), Reaction: domain.ReactionLike}))

	reactions, err := repo.FindByUserAndReviewIDs(ctx, viewer, []uuid.UUID{liked, disliked, untouched})
	require.NoError(t, err)
	require.Len(t, reactions, 2)

	byReview := map[uuid.UUID]domain.ReactionKind{}
	for _, r := range reactions {
		byReview[r.ReviewID] = r.Reaction
	}
	assert.Equal(t, domain.ReactionLike, byReview[liked])
	assert.Equal(t, domain.ReactionDislike, byReview[disliked])

	none, err := repo.FindByUserAndReviewIDs(ctx, viewer, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReactionRepository_UpsertKeepsCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	reviewID := uuid.New()
	userID := uuid.New()
	createdAt := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)

	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{
		ReviewID: reviewID, UserID: userID, Reaction: domain.ReactionLike, CreatedAt: createdAt, UpdatedAt: createdAt,
	}))
	require.NoError(t, repo.Upsert(ctx, &domain.ReviewReaction{ReviewID: reviewID, UserID: userID, Reaction: domain.ReactionDislike}))

	found, err := repo.FindByReviewAndUser(ctx, reviewID, userID)
	require.NoError(t, err)
	assert.True(t, found.CreatedAt.Equal(createdAt))
	assert.True(t, found.UpdatedAt.After(createdAt))
}
