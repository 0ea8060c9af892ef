package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/4pillsAday/dive-globe/internal/dto"
	"github.com/4pillsAday/dive-globe/internal/response"
	"github.com/4pillsAday/dive-globe/internal/service"
	"github.com/4pillsAday/dive-globe/internal/util"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListReviews godoc
// @Summary      List reviews of a dive site
// @Description  Top-level reviews newest first. Each carries its replies oldest first,
// @Description  with replies-to-replies placed directly after their parent.
// @Description  user_reaction is the caller's reaction, null when anonymous.
// @Tags         reviews
// @Produce      json
// @Param        slug path string true "Dive site slug"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ReviewResponse}
// @Failure      404 {object} response.ErrorResponse "Dive site not found"
// @Failure      500 {object} response.ErrorResponse "Store error"
// @Router       /dives/{slug}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListTopLevel(c.Request.Context(), c.Param("slug"), util.ViewerIDPtr(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary      Post a review or a reply
// @Description  Top-level reviews need a rating from 1 to 5. Replies set parentReviewId,
// @Description  are stored with rating 0 and may nest two levels deep.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Dive site slug"
// @Param        request body dto.CreateReviewRequest true "Review"
// @Success      201 {object} response.SuccessResponse{data=dto.ReviewResponse}
// @Failure      400 {object} response.ErrorResponse "Validation error"
// @Failure      401 {object} response.ErrorResponse "Authentication required"
// @Failure      404 {object} response.ErrorResponse "Dive site not found"
// @Failure      500 {object} response.ErrorResponse "Store error"
// @Router       /dives/{slug}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	authorID, ok := requireViewer(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendErrorWithDetails(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body", util.FormatValidationError(err))
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), c.Param("slug"), authorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, review)
}
