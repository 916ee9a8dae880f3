package main

import (
	"fmt"
	"time"

	"runGuard/domain"
	psqlRepo "runGuard/internal/repository/postgres"
	"runGuard/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

type runOpts struct {
	userID   string
	routeID  string
	distance float64
	duration float64
	effort   float64
	rating   float64
	weather  string
	at       string
}

func newRunCmd() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Record a completed run in a user's history",
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := newRunRecord(opts, time.Now())
			if err != nil {
				return err
			}

			_, db, err := connect()
			if err != nil {
				return err
			}

			if err := psqlRepo.NewHistoryRepository(db).AppendRun(cmd.Context(), record); err != nil {
				return fmt.Errorf("record run: %w", err)
			}
			logger.Info("Run recorded", "user_id", record.UserID, "route_id", record.RouteID, "completed_at", record.CompletedAt)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "User id (required)")
	cmd.Flags().StringVar(&opts.routeID, "route", "", "Route id (required)")
	cmd.Flags().Float64Var(&opts.distance, "distance", 0, "Distance run in km (required)")
	cmd.Flags().Float64Var(&opts.duration, "duration", 0, "Duration in minutes")
	cmd.Flags().Float64Var(&opts.effort, "effort", 0, "Perceived effort 0-10")
	cmd.Flags().Float64Var(&opts.rating, "rating", 0, "Rating 0-5")
	cmd.Flags().StringVar(&opts.weather, "weather", "", "Weather condition during the run")
	cmd.Flags().StringVar(&opts.at, "at", "", "Completion time, RFC3339 (default: now)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("route")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}

func newRunRecord(opts runOpts, now time.Time) (domain.HistoryRecord, error) {
	completedAt := now.UTC()
	if opts.at != "" {
		t, err := time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return domain.HistoryRecord{}, fmt.Errorf("%w: completion time: %v", domain.ErrInvalidInput, err)
		}
		completedAt = t.UTC()
	}

	record := domain.HistoryRecord{
		UserID:      opts.userID,
		RouteID:     opts.routeID,
		DistanceKm:  opts.distance,
		DurationMin: opts.duration,
		Effort:      opts.effort,
		Rating:      opts.rating,
		Weather:     domain.WeatherCondition(opts.weather),
		CompletedAt: completedAt,
	}
	if err := validator.New().Struct(record); err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return record, nil
}
