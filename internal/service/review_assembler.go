package service

import (
	"github.com/google/uuid"

	"github.com/4pillsAday/dive-globe/internal/domain"
	"github.com/4pillsAday/dive-globe/internal/dto"
)

// assembleThreads builds the response tree from rows loaded in bulk. Each
// top-level review receives every descendant in its replies list, each one
// placed directly after its parent, and replies never nest further.
// Replies whose top-level ancestor is not in topLevel are dropped.
func assembleThreads(
	topLevel []*domain.Review,
	replies []*domain.Review,
	photos []*domain.ReviewPhoto,
	reactions []*domain.ReviewReaction,
	photoURL func(string) string,
) []*dto.ReviewResponse {
	photosByReview := make(map[uuid.UUID][]*domain.ReviewPhoto)
	for _, p := range photos {
		photosByReview[p.ReviewID] = append(photosByReview[p.ReviewID], p)
	}

	reactionByReview := make(map[uuid.UUID]domain.ReactionKind, len(reactions))
	for _, r := range reactions {
		reactionByReview[r.ReviewID] = r.Reaction
	}

	// replies arrive oldest first, so children keep chronological order
	children := make(map[uuid.UUID][]*domain.Review)
	for _, r := range replies {
		if r.ParentReviewID == nil {
			continue
		}
		children[*r.ParentReviewID] = append(children[*r.ParentReviewID], r)
	}

	node := func(r *domain.Review) *dto.ReviewResponse {
		var reaction *domain.ReactionKind
		if kind, ok := reactionByReview[r.ID]; ok {
			reaction = &kind
		}
		return toReviewResponse(r, photosByReview[r.ID], reaction, photoURL)
	}

	result := make([]*dto.ReviewResponse, 0, len(topLevel))
	for _, top := range topLevel {
		resp := node(top)

		visited := map[uuid.UUID]bool{top.ID: true}
		var appendDescendants func(parentID uuid.UUID)
		appendDescendants = func(parentID uuid.UUID) {
			for _, child := range children[parentID] {
				if visited[child.ID] {
					continue
				}
				visited[child.ID] = true
				resp.Replies = append(resp.Replies, node(child))
				appendDescendants(child.ID)
			}
		}
		appendDescendants(top.ID)

		result = append(result, resp)
	}

	return result
}

// toReviewResponse converts one review. replies and review_photos are always
// non-nil so they serialise as [] rather than null.
func toReviewResponse(r *domain.Review, photos []*domain.ReviewPhoto, reaction *domain.ReactionKind, photoURL func(string) string) *dto.ReviewResponse {
	resp := &dto.ReviewResponse{
		ID:             r.ID,
		SiteID:         r.SiteID,
		AuthorID:       r.AuthorID,
		ParentReviewID: r.ParentReviewID,
		ThreadDepth:    r.ThreadDepth,
		Rating:         r.Rating,
		Body:           r.Body,
		CreatedAt:      r.CreatedAt,
		LikeCount:      r.LikeCount,
		DislikeCount:   r.DislikeCount,
		ReviewPhotos:   make([]dto.ReviewPhotoResponse, 0, len(photos)),
		Replies:        []*dto.ReviewResponse{},
	}

	for _, p := range photos {
		url := ""
		if photoURL != nil {
			url = photoURL(p.StoragePath)
		}
		resp.ReviewPhotos = append(resp.ReviewPhotos, dto.ReviewPhotoResponse{
			StoragePath: p.StoragePath,
			PublicURL:   url,
		})
	}

	if reaction != nil {
		value := string(*reaction)
		resp.UserReaction = &value
	}

	return resp
}

// reviewIDs collects the ids of every review in the given slices
func reviewIDs(groups ...[]*domain.Review) []uuid.UUID {
	var ids []uuid.UUID
	for _, group := range groups {
		for _, r := range group {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
