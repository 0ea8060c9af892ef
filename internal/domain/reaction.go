package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReactionKind is the value of a reaction row
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// IsValid reports whether k is like or dislike
func (k ReactionKind) IsValid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// ReviewReaction is identified by (ReviewID, UserID); one row per pair
type ReviewReaction struct {
	ReviewID  uuid.UUID    `gorm:"type:uuid;primaryKey" json:"review_id"`
	UserID    uuid.UUID    `gorm:"type:uuid;primaryKey;index:idx_review_reactions_user_id" json:"user_id"`
	Reaction  ReactionKind `gorm:"type:varchar(10);not null" json:"reaction"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for ReviewReaction
func (ReviewReaction) TableName() string {
	return "review_reactions"
}
