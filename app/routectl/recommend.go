package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"runGuard/business/recommend"
	"runGuard/domain"
	psqlRepo "runGuard/internal/repository/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type recommendOpts struct {
	userID      string
	temperature float64
	condition   string
	humidity    float64
	wind        float64
	timeOfDay   string
	limit       int
	scoring     string
	offline     bool
}

func newRecommendCmd() *cobra.Command {
	var opts recommendOpts

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print ranked route recommendations for a user as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "User id (required)")
	cmd.Flags().Float64Var(&opts.temperature, "temp", 18, "Temperature in Celsius")
	cmd.Flags().StringVar(&opts.condition, "condition", string(domain.ConditionClear), "Weather condition")
	cmd.Flags().Float64Var(&opts.humidity, "humidity", 50, "Relative humidity 0-100")
	cmd.Flags().Float64Var(&opts.wind, "wind", 5, "Wind speed in km/h")
	cmd.Flags().StringVar(&opts.timeOfDay, "time", "", "Time bucket (default: derived from the clock)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Number of results (default from scoring config)")
	cmd.Flags().StringVar(&opts.scoring, "scoring", "", "Scoring config YAML (default: SCORING_CONFIG)")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Rank the built-in catalog with a default profile, without a database")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runRecommend(ctx context.Context, out io.Writer, opts recommendOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		profiles recommend.ProfileRepository = noStore{}
		history  recommend.HistoryRepository = noStore{}
		routes   recommend.RouteRepository
		scoring  = opts.scoring
	)

	if !opts.offline {
		cfg, db, err := connect()
		if err != nil {
			return err
		}
		profiles = psqlRepo.NewProfileRepository(db)
		history = psqlRepo.NewHistoryRepository(db)
		routes = psqlRepo.NewRouteRepository(db)
		if scoring == "" {
			scoring = cfg.Recommend.ScoringConfigPath
		}
	}

	scoringCfg, err := recommend.LoadConfig(scoring)
	if err != nil {
		return err
	}

	svc := recommend.NewService(
		profiles,
		history,
		recommend.NewCandidateSource(routes, recommend.DefaultBreakerSettings()),
		validator.New(),
		scoringCfg,
	)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	recs, err := svc.Recommend(ctx, opts.userID, snapshotFromOpts(opts), opts.limit)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}

func snapshotFromOpts(opts recommendOpts) domain.ContextSnapshot {
	return domain.ContextSnapshot{
		Weather: domain.Weather{
			TemperatureC: opts.temperature,
			Condition:    domain.WeatherCondition(opts.condition),
			Humidity:     opts.humidity,
			WindSpeedKmh: opts.wind,
		},
		TimeBucket: domain.TimeBucket(opts.timeOfDay),
	}
}

// noStore is an empty profile and history store for offline ranking.
type noStore struct{}

func (noStore) GetProfile(context.Context, string) (*domain.UserPreferenceProfile, error) {
	return nil, nil
}

func (noStore) SaveProfile(context.Context, domain.UserPreferenceProfile) error {
	return nil
}

func (noStore) GetRecentHistory(context.Context, string, int) ([]domain.HistoryRecord, error) {
	return nil, nil
}
