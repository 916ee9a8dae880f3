package catalog

import (
	"context"
	"fmt"

	"runGuard/domain"
)

// RouteSource is satisfied by recommend.CandidateSource, so browsing follows
// the same fallback policy as ranking.
type RouteSource interface {
	Load(ctx context.Context) ([]domain.Route, bool)
	Get(ctx context.Context, routeID string) (*domain.Route, error)
}

type Filter struct {
	Terrain string
	Band    domain.DifficultyBand
	Limit   int
	Offset  int
}

type Page struct {
	Routes   []domain.Route `json:"routes"`
	Total    int            `json:"total"`
	Fallback bool           `json:"fallback"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	source RouteSource
}

func NewService(source RouteSource) *Service {
	return &Service{source: source}
}

// ListRoutes returns one page of routes in catalog order.
func (s *Service) ListRoutes(ctx context.Context, f Filter) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, fmt.Errorf("context error: %w", err)
	}
	if f.Band != "" && f.Band != domain.BandEasy && f.Band != domain.BandModerate && f.Band != domain.BandHard {
		return Page{}, fmt.Errorf("%w: unknown difficulty band %q", domain.ErrInvalidInput, f.Band)
	}
	if f.Offset < 0 {
		return Page{}, fmt.Errorf("%w: offset cannot be negative", domain.ErrInvalidInput)
	}
	if f.Limit <= 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}

	routes, fallback := s.source.Load(ctx)
	if err := ctx.Err(); err != nil {
		return Page{}, fmt.Errorf("context error: %w", err)
	}

	matched := make([]domain.Route, 0, len(routes))
	for _, r := range routes {
		if f.Terrain != "" && r.Terrain != f.Terrain {
			continue
		}
		if f.Band != "" && domain.BandForDifficulty(r.Difficulty) != f.Band {
			continue
		}
		matched = append(matched, r)
	}

	page := Page{Total: len(matched), Fallback: fallback, Routes: []domain.Route{}}
	if f.Offset >= len(matched) {
		return page, nil
	}
	end := f.Offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	page.Routes = matched[f.Offset:end]

	return page, nil
}

func (s *Service) GetRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if routeID == "" {
		return nil, fmt.Errorf("%w: route id is required", domain.ErrInvalidInput)
	}
	return s.source.Get(ctx, routeID)
}
