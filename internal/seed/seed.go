// Package seed holds the fallback dive site catalogue.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sites.yaml
var sitesYAML []byte

// Site is one catalogue entry
type Site struct {
	Slug          string   `yaml:"slug"`
	Name          string   `yaml:"name"`
	Country       string   `yaml:"country"`
	Lat           float64  `yaml:"lat"`
	Lng           float64  `yaml:"lng"`
	MaxDepth      *float64 `yaml:"max_depth"`
	Description   string   `yaml:"description"`
	Highlights    []string `yaml:"highlights"`
	WebflowItemID string   `yaml:"webflow_item_id"`
}

// Sites parses the embedded catalogue
func Sites() ([]Site, error) {
	return Parse(sitesYAML)
}

// Parse decodes a catalogue document
func Parse(data []byte) ([]Site, error) {
	var sites []Site
	if err := yaml.Unmarshal(data, &sites); err != nil {
		return nil, fmt.Errorf("failed to parse site catalogue: %w", err)
	}
	return sites, nil
}
