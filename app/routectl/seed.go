package main

import (
	"fmt"
	"io"
	"os"

	"runGuard/domain"
	psqlRepo "runGuard/internal/repository/postgres"
	"runGuard/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a JSON route catalog into the route store",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open routes file: %w", err)
			}
			defer f.Close()

			routes, err := readRoutes(f)
			if err != nil {
				return err
			}

			_, db, err := connect()
			if err != nil {
				return err
			}

			if err := psqlRepo.NewRouteRepository(db).UpsertRoutes(cmd.Context(), routes); err != nil {
				return fmt.Errorf("seed routes: %w", err)
			}
			logger.Info("Routes seeded", "count", len(routes), "file", file)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "routes.json", "JSON array of routes")

	return cmd
}

// readRoutes decodes a route array. File order becomes catalog order.
func readRoutes(r io.Reader) ([]domain.Route, error) {
	var routes []domain.Route
	if err := json.NewDecoder(r).Decode(&routes); err != nil {
		return nil, fmt.Errorf("decode routes: %w", err)
	}

	seen := make(map[string]struct{}, len(routes))
	for i := range routes {
		if routes[i].ID == "" {
			return nil, fmt.Errorf("route at index %d: %w: missing id", i, domain.ErrInvalidInput)
		}
		if _, dup := seen[routes[i].ID]; dup {
			return nil, fmt.Errorf("route %q: %w: duplicate id", routes[i].ID, domain.ErrInvalidInput)
		}
		if routes[i].Difficulty < 1 || routes[i].Difficulty > 10 {
			return nil, fmt.Errorf("route %q: %w: difficulty %d outside 1-10", routes[i].ID, domain.ErrInvalidInput, routes[i].Difficulty)
		}
		seen[routes[i].ID] = struct{}{}
		routes[i].CatalogOrder = i + 1
	}
	return routes, nil
}
