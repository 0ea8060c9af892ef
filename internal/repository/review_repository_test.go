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

func createTestSite(t *testing.T, db *gorm.DB, slug string) *domain.DiveSite {
	t.Helper()
	site := &domain.DiveSite{Slug: slug, Name: slug, Lat: 27.5, Lng: 34.5}
	require.NoError(t, db.Create(site).Error)
	return site
}

func createTestReview(t *testing.T, db *gorm.DB, siteID uuid.UUID, parent *domain.Review, rating int, createdAt time.Time) *domain.Review {
	t.Helper()
	review := &domain.Review{
		BaseModel: domain.BaseModel{CreatedAt: createdAt},
		SiteID:    siteID,
		AuthorID:  uuid.New(),
		Rating:    rating,
		Body:      "body",
	}
	if parent != nil {
		review.ParentReviewID = &parent.ID
		review.ThreadDepth = parent.ThreadDepth + 1
	}
	require.NoError(t, db.Create(review).Error)
	return review
}

func TestReviewRepository_FindTopLevelBySite(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	site := createTestSite(t, db, "blue-hole-dahab")
	other := createTestSite(t, db, "great-blue-hole")
	base := time.Now().UTC().Add(-time.Hour)

	older := createTestReview(t, db, site.ID, nil, 4, base)
	newer := createTestReview(t, db, site.ID, nil, 5, base.Add(time.Minute))
	createTestReview(t, db, site.ID, older, 0, base.Add(2*time.Minute))
	createTestReview(t, db, other.ID, nil, 3, base)

	reviews, err := repo.FindTopLevelBySite(ctx, site.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, newer.ID, reviews[0].ID)
	assert.Equal(t, older.ID, reviews[1].ID)
	for _, r := range reviews {
		assert.Nil(t, r.ParentReviewID)
	}
}

func TestReviewRepository_FindRepliesBySite(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	site := createTestSite(t, db, "blue-hole-dahab")
	base := time.Now().UTC().Add(-time.Hour)

	top := createTestReview(t, db, site.ID, nil, 5, base)
	first := createTestReview(t, db, site.ID, top, 0, base.Add(time.Minute))
	nested := createTestReview(t, db, site.ID, first, 0, base.Add(3*time.Minute))
	second := createTestReview(t, db, site.ID, top, 0, base.Add(2*time.Minute))

	replies, err := repo.FindRepliesBySite(ctx, site.ID)
	require.NoError(t, err)
	require.Len(t, replies, 3)
	assert.Equal(t, first.ID, replies[0].ID)
	assert.Equal(t, second.ID, replies[1].ID)
	assert.Equal(t, nested.ID, replies[2].ID)
	assert.Equal(t, 2, replies[2].ThreadDepth)
}

func TestReviewRepository_AggregateRatings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("리뷰 없음: 0/0", func(t *testing.T) {
		site := createTestSite(t, db, "empty-site")

		agg, err := repo.AggregateRatings(ctx, site.ID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, agg.AvgRating)
		assert.Equal(t, int64(0), agg.ReviewCount)
	})

	t.Run("답글은 평균과 개수에서 제외", func(t *testing.T) {
		site := createTestSite(t, db, "rated-site")
		five := createTestReview(t, db, site.ID, nil, 5, now)
		createTestReview(t, db, site.ID, nil, 4, now)
		createTestReview(t, db, site.ID, five, 0, now)

		agg, err := repo.AggregateRatings(ctx, site.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.5, agg.AvgRating, 0.0001)
		assert.Equal(t, int64(2), agg.ReviewCount)
	})
}

func TestReviewRepository_UpdateCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	site := createTestSite(t, db, "blue-hole-dahab")
	review := createTestReview(t, db, site.ID, nil, 5, time.Now().UTC())

	require.NoError(t, repo.UpdateCounts(ctx, review.ID, 3, 1))

	found, err := repo.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.LikeCount)
	assert.Equal(t, int64(1), found.DislikeCount)
	assert.Equal(t, 5, found.Rating)
}

func TestReviewRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
