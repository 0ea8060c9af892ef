package dto

// ReactRequest represents the request to set the caller's reaction
type ReactRequest struct {
	Reaction string `json:"reaction" binding:"required,reaction" example:"like" enums:"like,dislike"`
}

// ReactionCounts is the recomputed tally of a review
type ReactionCounts struct {
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
}

// ReactionResponse is returned after setting a reaction
type ReactionResponse struct {
	Reaction string         `json:"reaction"`
	Counts   ReactionCounts `json:"counts"`
}

// ReactionCountsResponse is returned after clearing a reaction
type ReactionCountsResponse struct {
	Counts ReactionCounts `json:"counts"`
}
