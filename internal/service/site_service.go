package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/4pillsAday/dive-globe/internal/domain"
	"github.com/4pillsAday/dive-globe/internal/dto"
	"github.com/4pillsAday/dive-globe/internal/repository"
	"github.com/4pillsAday/dive-globe/internal/response"
	"github.com/4pillsAday/dive-globe/internal/seed"
)

// SampleSlugs are probed by Check to tell whether the catalogue was seeded
var SampleSlugs = []string{"blue-hole-dahab", "andros-blue-holes-bahamas", "great-blue-hole"}

// SiteService defines the interface for dive site business logic
type SiteService interface {
	List(ctx context.Context) ([]*dto.SiteResponse, error)
	Get(ctx context.Context, slug string) (*dto.SiteDetailResponse, error)
	Lookup(ctx context.Context, slug string) (*dto.SiteResponse, error)
	Check(ctx context.Context) (*dto.CheckResponse, error)
	Populate(ctx context.Context) (*dto.PopulateResponse, error)
}

type siteServiceImpl struct {
	siteRepo repository.SiteRepository
	counters CounterService
	catalog  func() ([]seed.Site, error)
	logger   *zap.Logger
}

// NewSiteService creates a new instance of SiteService. catalog supplies the
// entries inserted by Populate; nil uses the embedded catalogue.
func NewSiteService(siteRepo repository.SiteRepository, counters CounterService, catalog func() ([]seed.Site, error), logger *zap.Logger) SiteService {
	if catalog == nil {
		catalog = seed.Sites
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &siteServiceImpl{
		siteRepo: siteRepo,
		counters: counters,
		catalog:  catalog,
		logger:   logger,
	}
}

func (s *siteServiceImpl) List(ctx context.Context) ([]*dto.SiteResponse, error) {
	sites, err := s.siteRepo.List(ctx)
	if err != nil {
		return nil, response.NewStoreError("Failed to load dive sites", err)
	}

	result := make([]*dto.SiteResponse, 0, len(sites))
	for _, site := range sites {
		resp := toSiteResponse(site)
		result = append(result, &resp)
	}
	return result, nil
}

func (s *siteServiceImpl) Get(ctx context.Context, slug string) (*dto.SiteDetailResponse, error) {
	site, err := s.siteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, siteLookupError(err)
	}

	stats, err := s.counters.GetStatsBySiteID(ctx, site.ID)
	if err != nil {
		return nil, err
	}

	return &dto.SiteDetailResponse{
		SiteResponse: toSiteResponse(site),
		Stats:        *stats,
	}, nil
}

// Lookup resolves a slug without loading stats
func (s *siteServiceImpl) Lookup(ctx context.Context, slug string) (*dto.SiteResponse, error) {
	site, err := s.siteRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, siteLookupError(err)
	}
	resp := toSiteResponse(site)
	return &resp, nil
}

func (s *siteServiceImpl) Check(ctx context.Context) (*dto.CheckResponse, error) {
	count, err := s.siteRepo.Count(ctx)
	if err != nil {
		return nil, response.NewStoreError("Failed to count dive sites", err)
	}

	exists := make(map[string]bool, len(SampleSlugs))
	for _, sample := range SampleSlugs {
		ok, err := s.siteRepo.ExistsBySlug(ctx, sample)
		if err != nil {
			return nil, response.NewStoreError("Failed to check dive site", err)
		}
		exists[sample] = ok
	}

	message := fmt.Sprintf("Found %d dive sites", count)
	if count == 0 {
		message = "No dive sites found. Please populate the database by calling POST /dives/populate"
	}

	return &dto.CheckResponse{
		TotalDiveSites:   count,
		Message:          message,
		SampleSlugsExist: exists,
	}, nil
}

// Populate inserts catalogue entries whose slug is not taken yet. A failing
// entry is reported in the result and does not stop the run.
func (s *siteServiceImpl) Populate(ctx context.Context) (*dto.PopulateResponse, error) {
	entries, err := s.catalog()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load site catalogue", err.Error())
	}

	result := &dto.PopulateResponse{
		Message: "Dive sites population completed",
		Summary: dto.PopulateSummary{Total: len(entries)},
	}

	for _, entry := range entries {
		site, err := siteFromSeed(entry)
		if err != nil {
			result.Errors = append(result.Errors, dto.PopulateError{Slug: entry.Slug, Error: err.Error()})
			result.Summary.Errors++
			continue
		}

		exists, err := s.siteRepo.ExistsBySlug(ctx, site.Slug)
		if err != nil {
			result.Errors = append(result.Errors, dto.PopulateError{Slug: site.Slug, Error: err.Error()})
			result.Summary.Errors++
			continue
		}
		if exists {
			s.logger.Debug("Skipping existing dive site", zap.String("slug", site.Slug))
			result.Summary.Skipped++
			continue
		}

		if err := s.siteRepo.Create(ctx, site); err != nil {
			s.logger.Error("Failed to insert dive site", zap.String("slug", site.Slug), zap.Error(err))
			result.Errors = append(result.Errors, dto.PopulateError{Slug: site.Slug, Error: err.Error()})
			result.Summary.Errors++
			continue
		}
		result.Summary.Inserted++
	}

	s.logger.Info("Dive site population completed",
		zap.Int("total", result.Summary.Total),
		zap.Int("inserted", result.Summary.Inserted),
		zap.Int("skipped", result.Summary.Skipped),
		zap.Int("errors", result.Summary.Errors),
	)

	return result, nil
}

// siteFromSeed converts a catalogue entry, deriving the slug from the name
// when it is missing
func siteFromSeed(entry seed.Site) (*domain.DiveSite, error) {
	siteSlug := slug.Make(entry.Slug)
	if siteSlug == "" {
		siteSlug = slug.Make(entry.Name)
	}
	if siteSlug == "" {
		return nil, fmt.Errorf("entry has neither slug nor name")
	}

	highlights := entry.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	features, err := json.Marshal(highlights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode highlights: %w", err)
	}

	site := &domain.DiveSite{
		Slug:            siteSlug,
		Name:            entry.Name,
		Description:     entry.Description,
		LocationCountry: entry.Country,
		Lat:             entry.Lat,
		Lng:             entry.Lng,
		DepthM:          entry.MaxDepth,
		Features:        datatypes.JSON(features),
	}
	if entry.WebflowItemID != "" {
		id := entry.WebflowItemID
		site.WebflowItemID = &id
	}
	return site, nil
}

func toSiteResponse(site *domain.DiveSite) dto.SiteResponse {
	resp := dto.SiteResponse{
		ID:              site.ID,
		Slug:            site.Slug,
		Name:            site.Name,
		Description:     site.Description,
		LocationCountry: site.LocationCountry,
		Lat:             site.Lat,
		Lng:             site.Lng,
		DepthM:          site.DepthM,
	}
	if len(site.Features) > 0 {
		resp.Features = json.RawMessage(site.Features)
	}
	return resp
}
