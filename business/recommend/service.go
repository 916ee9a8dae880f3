package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"runGuard/domain"
	"runGuard/pkg/logger"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// ---- Repository interfaces ----

// ProfileRepository returns (nil, nil) when the user has no stored profile.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*domain.UserPreferenceProfile, error)
	SaveProfile(ctx context.Context, profile domain.UserPreferenceProfile) error
}

// HistoryRepository returns at most limit records, newest first.
type HistoryRepository interface {
	GetRecentHistory(ctx context.Context, userID string, limit int) ([]domain.HistoryRecord, error)
}

// RouteRepository returns (nil, nil) from GetRoute when the route does not exist.
type RouteRepository interface {
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	GetRoute(ctx context.Context, routeID string) (*domain.Route, error)
}

type FeedbackRepository interface {
	SaveFeedback(ctx context.Context, feedback domain.RouteFeedback) error
}

// ---- Service ----

type Service struct {
	profileRepo ProfileRepository
	historyRepo HistoryRepository
	candidates  *CandidateSource
	signals     []Signal
	cfg         Config
	validate    *validator.Validate
	now         func() time.Time
}

type Option func(*Service)

// WithClock replaces the clock used to derive the time bucket.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	profileRepo ProfileRepository,
	historyRepo HistoryRepository,
	candidates *CandidateSource,
	validate *validator.Validate,
	cfg Config,
	opts ...Option,
) *Service {
	s := &Service{
		profileRepo: profileRepo,
		historyRepo: historyRepo,
		candidates:  candidates,
		signals:     DefaultSignals(),
		cfg:         cfg,
		validate:    validate,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommend ranks the candidate routes for a user in the given context and
// returns at most limit of them, best first. It performs no writes.
func (s *Service) Recommend(
	ctx context.Context,
	userID string,
	snapshot domain.ContextSnapshot,
	limit int,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := s.validateRequest(userID, &snapshot); err != nil {
		return nil, err
	}
	limit = s.cfg.normalizeLimit(limit)

	// 1) load profile, history and candidates
	profile, history, routes, fromFallback, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2) score every candidate
	in := newRankInput(profile, history, snapshot)
	recs := make([]domain.Recommendation, 0, len(routes))
	for _, route := range routes {
		recs = append(recs, s.scoreRoute(in, route))
	}

	// 3) best first, ties keep catalog order
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score.Value > recs[j].Score.Value
	})

	// 4) top-N
	if len(recs) > limit {
		recs = recs[:limit]
	}

	logger.Debug("route_recommend",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", userID,
		"time_bucket", snapshot.TimeBucket,
		"condition", snapshot.Weather.Condition,
		"weather_score", in.weatherScore,
		"history_count", in.History.Count,
		"candidate_count", len(routes),
		"fallback", fromFallback,
		"limit", limit,
		"returned", len(recs),
	)

	RecommendationsServed.Observe(float64(len(recs)))
	for _, r := range recs {
		ArchetypeTotal.WithLabelValues(string(r.Archetype)).Inc()
	}

	return recs, nil
}

func (s *Service) validateRequest(userID string, snapshot *domain.ContextSnapshot) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if err := s.validate.Struct(snapshot); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if snapshot.TimeBucket == "" {
		snapshot.TimeBucket = BucketForTime(s.now())
	}
	if !snapshot.TimeBucket.Valid() {
		return fmt.Errorf("%w: unknown time bucket %q", domain.ErrInvalidInput, snapshot.TimeBucket)
	}
	return nil
}

// load fetches the user's data and the candidates concurrently. Only the
// user's own data can fail the request.
func (s *Service) load(ctx context.Context, userID string) (
	domain.UserPreferenceProfile,
	[]domain.HistoryRecord,
	[]domain.Route,
	bool,
	error,
) {
	var (
		profile      *domain.UserPreferenceProfile
		history      []domain.HistoryRecord
		routes       []domain.Route
		fromFallback bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.profileRepo.GetProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("%w: load profile: %w", domain.ErrDataUnavailable, err)
		}
		profile = p
		return nil
	})

	g.Go(func() error {
		h, err := s.historyRepo.GetRecentHistory(gctx, userID, domain.HistoryWindow)
		if err != nil {
			return fmt.Errorf("%w: load history: %w", domain.ErrDataUnavailable, err)
		}
		history = h
		return nil
	})

	g.Go(func() error {
		routes, fromFallback = s.candidates.Load(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.UserPreferenceProfile{}, nil, nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return domain.UserPreferenceProfile{}, nil, nil, false, fmt.Errorf("context error: %w", err)
	}

	if profile == nil {
		def := domain.NewDefaultProfile(userID)
		profile = &def
	}

	return *profile, history, routes, fromFallback, nil
}

func (s *Service) scoreRoute(in *RankInput, route domain.Route) domain.Recommendation {
	breakdown := evaluateSignals(s.signals, in, route)
	value := Aggregate(breakdown, s.cfg.Weights)
	exp := Explain(breakdown, route, in.Snapshot.TimeBucket, s.cfg.Thresholds)

	return domain.Recommendation{
		Route: route,
		Score: domain.Score{
			Value:     value,
			Flags:     exp.Flags,
			Archetype: exp.Archetype,
		},
		Reasons:   exp.Reasons,
		Archetype: exp.Archetype,
		Breakdown: breakdown,
	}
}
