package domain

import "github.com/google/uuid"

// MaxThreadDepth is the deepest allowed reply: review -> reply -> reply-to-reply
const MaxThreadDepth = 2

// Review is either a top-level review of a dive site or a reply to another review.
// SiteID, AuthorID and ParentReviewID are write-once.
type Review struct {
	BaseModel
	SiteID         uuid.UUID     `gorm:"type:uuid;not null;index:idx_reviews_site_parent,priority:1;<-:create" json:"site_id"`
	AuthorID       uuid.UUID     `gorm:"type:uuid;not null;index:idx_reviews_author_id;<-:create" json:"author_id"`
	ParentReviewID *uuid.UUID    `gorm:"type:uuid;index:idx_reviews_site_parent,priority:2;<-:create" json:"parent_review_id"`
	ThreadDepth    int           `gorm:"not null;<-:create" json:"thread_depth"`
	Rating         int           `gorm:"not null;<-:create" json:"rating"`
	Body           string        `gorm:"type:text;not null;<-:create" json:"body"`
	LikeCount      int64         `gorm:"not null" json:"like_count"`
	DislikeCount   int64         `gorm:"not null" json:"dislike_count"`
	Photos         []ReviewPhoto `gorm:"-" json:"review_photos,omitempty"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}

// IsTopLevel reports whether the review has no parent
func (r *Review) IsTopLevel() bool {
	return r.ParentReviewID == nil
}

// ReviewPhoto references an object in the photo bucket
type ReviewPhoto struct {
	BaseModel
	ReviewID    uuid.UUID `gorm:"type:uuid;not null;index:idx_review_photos_review_id" json:"review_id"`
	StoragePath string    `gorm:"type:text;not null" json:"storage_path"`
}

// TableName specifies the table name for ReviewPhoto
func (ReviewPhoto) TableName() string {
	return "review_photos"
}
