package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4pillsAday/dive-globe/internal/dto"
	"github.com/4pillsAday/dive-globe/internal/response"
)

func serveSite(h *SiteHandler, viewer *uuid.UUID, method, path string) *httptest.ResponseRecorder {
	router := setupTestRouter()
	if viewer != nil {
		router.Use(withViewer(*viewer))
	}
	router.GET("/api/dives", h.ListSites)
	router.GET("/api/dives/check", h.Check)
	router.POST("/api/dives/populate", h.Populate)
	router.GET("/api/dives/:slug", h.GetSite)
	router.GET("/api/dives/:slug/stats", h.GetStats)

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSiteHandler_GetStats(t *testing.T) {
	t.Run("사이트의 평점 집계", func(t *testing.T) {
		counters := &MockCounterService{
			GetSiteStatsFunc: func(ctx context.Context, slug string) (*dto.SiteStatsResponse, error) {
				assert.Equal(t, "blue-hole-dahab", slug)
				return &dto.SiteStatsResponse{AvgRating: 4.5, ReviewCount: 2}, nil
			},
		}
		w := serveSite(NewSiteHandler(&MockSiteService{}, counters), nil, http.MethodGet, "/api/dives/blue-hole-dahab/stats")

		require.Equal(t, http.StatusOK, w.Code)
		var stats dto.SiteStatsResponse
		decodeData(t, w, &stats)
		assert.Equal(t, 4.5, stats.AvgRating)
		assert.Equal(t, int64(2), stats.ReviewCount)
	})

	t.Run("리뷰 없는 사이트는 0", func(t *testing.T) {
		w := serveSite(NewSiteHandler(&MockSiteService{}, &MockCounterService{}), nil, http.MethodGet, "/api/dives/empty/stats")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"avg_rating":0,"review_count":0}`, extractData(t, w))
	})

	t.Run("없는 사이트", func(t *testing.T) {
		counters := &MockCounterService{
			GetSiteStatsFunc: func(ctx context.Context, slug string) (*dto.SiteStatsResponse, error) {
				return nil, response.NewNotFoundError("Dive site not found", slug)
			},
		}
		w := serveSite(NewSiteHandler(&MockSiteService{}, counters), nil, http.MethodGet, "/api/dives/nowhere/stats")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSiteHandler_ListAndGet(t *testing.T) {
	siteID := uuid.New()
	sites := &MockSiteService{
		ListFunc: func(ctx context.Context) ([]*dto.SiteResponse, error) {
			return []*dto.SiteResponse{{ID: siteID, Slug: "great-blue-hole", Name: "Great Blue Hole", Lat: 17.3, Lng: -87.5}}, nil
		},
		GetFunc: func(ctx context.Context, slug string) (*dto.SiteDetailResponse, error) {
			if slug != "great-blue-hole" {
				return nil, response.NewNotFoundError("Dive site not found", slug)
			}
			return &dto.SiteDetailResponse{
				SiteResponse: dto.SiteResponse{ID: siteID, Slug: slug},
				Stats:        dto.SiteStatsResponse{AvgRating: 3, ReviewCount: 1},
			}, nil
		},
	}
	h := NewSiteHandler(sites, &MockCounterService{})

	w := serveSite(h, nil, http.MethodGet, "/api/dives")
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.SiteResponse
	decodeData(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "great-blue-hole", list[0].Slug)

	w = serveSite(h, nil, http.MethodGet, "/api/dives/great-blue-hole")
	require.Equal(t, http.StatusOK, w.Code)
	var detail dto.SiteDetailResponse
	decodeData(t, w, &detail)
	assert.Equal(t, int64(1), detail.Stats.ReviewCount)

	w = serveSite(h, nil, http.MethodGet, "/api/dives/atlantis")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSiteHandler_CheckRouteIsNotASlug(t *testing.T) {
	sites := &MockSiteService{
		CheckFunc: func(ctx context.Context) (*dto.CheckResponse, error) {
			return &dto.CheckResponse{TotalDiveSites: 3, Message: "Found 3 dive sites"}, nil
		},
		GetFunc: func(ctx context.Context, slug string) (*dto.SiteDetailResponse, error) {
			t.Errorf("GetSite called for %q", slug)
			return nil, nil
		},
	}
	w := serveSite(NewSiteHandler(sites, &MockCounterService{}), nil, http.MethodGet, "/api/dives/check")

	require.Equal(t, http.StatusOK, w.Code)
	var result dto.CheckResponse
	decodeData(t, w, &result)
	assert.Equal(t, int64(3), result.TotalDiveSites)
}

func TestSiteHandler_Populate(t *testing.T) {
	populated := 0
	sites := &MockSiteService{
		PopulateFunc: func(ctx context.Context) (*dto.PopulateResponse, error) {
			populated++
			return &dto.PopulateResponse{
				Message: "Dive sites population completed",
				Summary: dto.PopulateSummary{Total: 3, Inserted: 3},
			}, nil
		},
	}
	h := NewSiteHandler(sites, &MockCounterService{})

	w := serveSite(h, nil, http.MethodPost, "/api/dives/populate")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, populated)

	caller := uuid.New()
	w = serveSite(h, &caller, http.MethodPost, "/api/dives/populate")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, populated)
	var result dto.PopulateResponse
	decodeData(t, w, &result)
	assert.Equal(t, 3, result.Summary.Inserted)
}
