package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/4pillsAday/dive-globe/internal/dto"
	"github.com/4pillsAday/dive-globe/internal/response"
	"github.com/4pillsAday/dive-globe/internal/service"
	"github.com/4pillsAday/dive-globe/internal/util"
)

type ReactionHandler struct {
	reactionService service.ReactionService
}

func NewReactionHandler(reactionService service.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

// React godoc
// @Summary      Set the caller's reaction
// @Description  Creates or replaces the caller's reaction. Repeating the same reaction
// @Description  changes nothing. Authors cannot react to their own reviews.
// @Tags         reactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Dive site slug"
// @Param        reviewId path string true "Review ID (UUID)"
// @Param        request body dto.ReactRequest true "Reaction"
// @Success      200 {object} response.SuccessResponse{data=dto.ReactionResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid reaction or self-reaction"
// @Failure      401 {object} response.ErrorResponse "Authentication required"
// @Failure      404 {object} response.ErrorResponse "Dive site or review not found"
// @Failure      500 {object} response.ErrorResponse "Store error"
// @Router       /dives/{slug}/reviews/{reviewId}/react [post]
func (h *ReactionHandler) React(c *gin.Context) {
	userID, ok := requireViewer(c)
	if !ok {
		return
	}

	reviewID, ok := parseReviewID(c)
	if !ok {
		return
	}

	var req dto.ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendErrorWithDetails(c, http.StatusBadRequest, response.ErrCodeValidation, "Reaction must be like or dislike", util.FormatValidationError(err))
		return
	}

	result, err := h.reactionService.SetReaction(c.Request.Context(), c.Param("slug"), reviewID, userID, req.Reaction)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// ClearReaction godoc
// @Summary      Remove the caller's reaction
// @Description  Removing a reaction that does not exist is not an error.
// @Tags         reactions
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Dive site slug"
// @Param        reviewId path string true "Review ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ReactionCountsResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid review ID"
// @Failure      401 {object} response.ErrorResponse "Authentication required"
// @Failure      500 {object} response.ErrorResponse "Store error"
// @Router       /dives/{slug}/reviews/{reviewId}/react [delete]
func (h *ReactionHandler) ClearReaction(c *gin.Context) {
	userID, ok := requireViewer(c)
	if !ok {
		return
	}

	reviewID, ok := parseReviewID(c)
	if !ok {
		return
	}

	result, err := h.reactionService.ClearReaction(c.Request.Context(), reviewID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

func parseReviewID(c *gin.Context) (uuid.UUID, bool) {
	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid review ID")
		return uuid.Nil, false
	}
	return reviewID, true
}
