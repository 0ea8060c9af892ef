package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CreateReviewRequest represents the request to post a review or a reply
// @Description rating is required (1-5) for top-level reviews and ignored for replies
// @Description photos holds storage paths returned by the photo upload endpoint
type CreateReviewRequest struct {
	Rating         *int       `json:"rating,omitempty" example:"4"`
	Body           string     `json:"body" example:"Great wall dive"`
	Photos         []PhotoRef `json:"photos,omitempty"`
	ParentReviewID *uuid.UUID `json:"parentReviewId,omitempty" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
}

// PhotoRef references an uploaded photo. It decodes from either
// {"storage_path": "..."} or a bare path string.
type PhotoRef struct {
	StoragePath string `json:"storage_path" example:"review-photos/7c9e6679-7425-40de-944b-e07fc1f90ae7/1718000000000-reef.jpg"`
}

func (p *PhotoRef) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		p.StoragePath = path
		return nil
	}
	type plain PhotoRef
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = PhotoRef(v)
	return nil
}

// PhotoPaths returns the raw storage paths in request order
func (r *CreateReviewRequest) PhotoPaths() []string {
	paths := make([]string, 0, len(r.Photos))
	for _, p := range r.Photos {
		paths = append(paths, p.StoragePath)
	}
	return paths
}

// ReviewPhotoResponse is a photo attached to a review
type ReviewPhotoResponse struct {
	StoragePath string `json:"storage_path"`
	PublicURL   string `json:"public_url"`
}

// ReviewResponse is one node of the review tree. Replies of a reply are
// flattened into the top-level review's replies, so nesting stops at one level.
type ReviewResponse struct {
	ID             uuid.UUID             `json:"id"`
	SiteID         uuid.UUID             `json:"site_id"`
	AuthorID       uuid.UUID             `json:"author_id"`
	ParentReviewID *uuid.UUID            `json:"parent_review_id"`
	ThreadDepth    int                   `json:"thread_depth"`
	Rating         int                   `json:"rating"`
	Body           string                `json:"body"`
	CreatedAt      time.Time             `json:"created_at"`
	LikeCount      int64                 `json:"like_count"`
	DislikeCount   int64                 `json:"dislike_count"`
	ReviewPhotos   []ReviewPhotoResponse `json:"review_photos"`
	UserReaction   *string               `json:"user_reaction"`
	Replies        []*ReviewResponse     `json:"replies"`
}
