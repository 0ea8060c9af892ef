package domain

import (
	"gorm.io/datatypes"
)

// DiveSite is a point on the globe that reviews attach to
type DiveSite struct {
	BaseModel
	Slug            string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_dive_sites_slug" json:"slug"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	LocationCountry string         `gorm:"type:varchar(100)" json:"location_country"`
	Lat             float64        `gorm:"not null" json:"lat"`
	Lng             float64        `gorm:"not null" json:"lng"`
	DepthM          *float64       `json:"depth_m"`
	Features        datatypes.JSON `gorm:"type:jsonb" json:"features"`
	WebflowItemID   *string        `gorm:"type:varchar(64)" json:"webflow_item_id,omitempty"`
}

// TableName specifies the table name for DiveSite
func (DiveSite) TableName() string {
	return "dive_sites"
}
