package dto

import (
	"time"

	"github.com/google/uuid"
)

// Live event types
const (
	EventReviewCreated   = "review_created"
	EventReactionUpdated = "reaction_updated"
)

// LiveEvent is pushed to WebSocket subscribers of a dive site
type LiveEvent struct {
	Type       string          `json:"type"`
	SiteID     uuid.UUID       `json:"site_id"`
	ReviewID   uuid.UUID       `json:"review_id"`
	Review     *ReviewResponse `json:"review,omitempty"`
	Counts     *ReactionCounts `json:"counts,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
