package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/4pillsAday/dive-globe/internal/response"
	"github.com/4pillsAday/dive-globe/internal/service"
)

type SiteHandler struct {
	siteService    service.SiteService
	counterService service.CounterService
}

func NewSiteHandler(siteService service.SiteService, counterService service.CounterService) *SiteHandler {
	return &SiteHandler{
		siteService:    siteService,
		counterService: counterService,
	}
}

// ListSites godoc
// @Summary      List dive sites
// @Description  Every dive site with its coordinates, ordered by name
// @Tags         dives
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.SiteResponse}
// @Failure      500 {object} response.ErrorResponse "Store error"
// @Router       /dives [get]
func (h *SiteHandler) ListSites(c *gin.Context) {
	sites, err := h.siteService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, sites)
}

// GetSite godoc
// @Summary      Get a dive site
// @Tags         dives
// @Produce      json
// @Param        slug path string true "Dive site slug"
// @Success      200 {object} response.SuccessResponse{data=dto.SiteDetailResponse}
// @Failure      404 {object} response.ErrorResponse "Dive site not found"
// @Failure      500 {object} response.ErrorResponse "Store error"
// @Router       /dives/{slug} [get]
func (h *SiteHandler) GetSite(c *gin.Context) {
	site, err := h.siteService.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, site)
}

// GetStats godoc
// @Summary      Get the aggregate rating of a dive site
// @Description  Average rating and count of top-level reviews. Both are 0 when the site has no reviews.
// @Tags         dives
// @Produce      json
// @Param        slug path string true "Dive site slug"
// @Success      200 {object} response.SuccessResponse{data=dto.SiteStatsResponse}
// @Failure      404 {object} response.ErrorResponse "Dive site not found"
// @Failure      500 {object} response.ErrorResponse "Store error"
// @Router       /dives/{slug}/stats [get]
func (h *SiteHandler) GetStats(c *gin.Context) {
	stats, err := h.counterService.GetSiteStats(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, stats)
}

// Check godoc
// @Summary      Check the dive site catalogue
// @Description  Counts dive sites and probes a few well known slugs
// @Tags         dives
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.CheckResponse}
// @Failure      500 {object} response.ErrorResponse "Store error"
// @Router       /dives/check [get]
func (h *SiteHandler) Check(c *gin.Context) {
	result, err := h.siteService.Check(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// Populate godoc
// @Summary      Seed the dive site catalogue
// @Description  Inserts the built-in catalogue, skipping slugs that already exist
// @Tags         dives
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=dto.PopulateResponse}
// @Failure      401 {object} response.ErrorResponse "Authentication required"
// @Failure      500 {object} response.ErrorResponse "Catalogue could not be loaded"
// @Router       /dives/populate [post]
func (h *SiteHandler) Populate(c *gin.Context) {
	if _, ok := requireViewer(c); !ok {
		return
	}

	result, err := h.siteService.Populate(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}
