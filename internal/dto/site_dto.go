package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// SiteStatsResponse holds the aggregate rating of a site.
// A site without reviews reports zero for both fields.
type SiteStatsResponse struct {
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

// SiteResponse is a dive site as plotted on the globe
type SiteResponse struct {
	ID              uuid.UUID       `json:"id"`
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	LocationCountry string          `json:"location_country"`
	Lat             float64         `json:"lat"`
	Lng             float64         `json:"lng"`
	DepthM          *float64        `json:"depth_m"`
	Features        json.RawMessage `json:"features,omitempty" swaggertype:"array,string"`
}

// SiteDetailResponse is a dive site with its aggregate rating
type SiteDetailResponse struct {
	SiteResponse
	Stats SiteStatsResponse `json:"stats"`
}

// CheckResponse reports whether the site catalogue has been seeded
type CheckResponse struct {
	TotalDiveSites   int64           `json:"totalDiveSites"`
	Message          string          `json:"message"`
	SampleSlugsExist map[string]bool `json:"sampleSlugsExist"`
}

// PopulateSummary counts the outcome of a seeding run
type PopulateSummary struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// PopulateError names a catalogue entry that could not be inserted
type PopulateError struct {
	Slug  string `json:"slug"`
	Error string `json:"error"`
}

// PopulateResponse is returned by the seeding endpoint
type PopulateResponse struct {
	Message string          `json:"message"`
	Summary PopulateSummary `json:"summary"`
	Errors  []PopulateError `json:"errors,omitempty"`
}
