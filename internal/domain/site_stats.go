package domain

import (
	"time"

	"github.com/google/uuid"
)

// SiteStats is derived from the top-level reviews of a site
type SiteStats struct {
	SiteID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"site_id"`
	AvgRating   float64   `gorm:"not null" json:"avg_rating"`
	ReviewCount int64     `gorm:"not null" json:"review_count"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for SiteStats
func (SiteStats) TableName() string {
	return "site_stats"
}
