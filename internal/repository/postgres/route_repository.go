package postgres

import (
	"context"
	"errors"
	"fmt"

	"runGuard/business/recommend"
	"runGuard/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RouteRepository struct {
	DB *gorm.DB
}

var _ recommend.RouteRepository = (*RouteRepository)(nil)

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{DB: db}
}

// ListRoutes returns every route in catalog order.
func (r *RouteRepository) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var routes []domain.Route
	if err := r.DB.WithContext(ctx).
		Order("catalog_order ASC").
		Order("id ASC").
		Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}

	return routes, nil
}

func (r *RouteRepository) GetRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var route domain.Route
	err := r.DB.WithContext(ctx).First(&route, "id = ?", routeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query route %s: %w", routeID, err)
	}

	return &route, nil
}

// UpsertRoutes inserts or replaces routes by id.
func (r *RouteRepository) UpsertRoutes(ctx context.Context, routes []domain.Route) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(routes) == 0 {
		return nil
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name",
				"distance_km",
				"difficulty",
				"terrain",
				"safety_rating",
				"popularity",
				"rating_count",
				"lighting",
				"time_suitability",
				"weather_suitability",
				"features",
				"catalog_order",
			}),
		}).
		Create(&routes).Error
}
