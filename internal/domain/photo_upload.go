package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadStatus represents the lifecycle of an uploaded photo object
type UploadStatus string

const (
	UploadStatusTemp      UploadStatus = "TEMP"      // uploaded, not yet referenced by a review
	UploadStatusConfirmed UploadStatus = "CONFIRMED" // referenced by a review
)

// PhotoUpload tracks an object put into the photo bucket so that uploads
// never attached to a review can be removed after ExpiresAt.
type PhotoUpload struct {
	BaseModel
	StoragePath string       `gorm:"type:text;not null;uniqueIndex:idx_photo_uploads_storage_path" json:"storage_path"`
	Status      UploadStatus `gorm:"type:varchar(20);not null;index:idx_photo_uploads_status" json:"status"`
	FileName    string       `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize    int64        `gorm:"not null" json:"file_size"`
	ContentType string       `gorm:"type:varchar(100);not null" json:"content_type"`
	UploadedBy  uuid.UUID    `gorm:"type:uuid;not null;index:idx_photo_uploads_uploaded_by" json:"uploaded_by"`
	ExpiresAt   *time.Time   `gorm:"index:idx_photo_uploads_expires_at" json:"expires_at"`
}

// TableName specifies the table name for PhotoUpload
func (PhotoUpload) TableName() string {
	return "photo_uploads"
}
