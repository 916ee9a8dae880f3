package recommend

import (
	"context"
	"errors"
	"time"

	"runGuard/domain"
	"runGuard/pkg/logger"

	"github.com/sony/gobreaker/v2"
)

// Fallback reasons, also used as metric labels.
const (
	fallbackStoreError = "store_error"
	fallbackEmpty      = "empty"
	fallbackOpen       = "breaker_open"
)

type BreakerSettings struct {
	// consecutive store failures before the breaker opens
	MaxFailures uint32
	// how long the breaker stays open before probing the store again
	OpenTimeout time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{MaxFailures: 5, OpenTimeout: 30 * time.Second}
}

// CandidateSource loads the routes to rank. Store failures and empty results
// degrade to a deterministic built-in catalog and are never returned to callers.
type CandidateSource struct {
	repo     RouteRepository
	breaker  *gobreaker.CircuitBreaker[[]domain.Route]
	fallback func() []domain.Route
}

func NewCandidateSource(repo RouteRepository, settings BreakerSettings) *CandidateSource {
	if settings.MaxFailures == 0 {
		settings.MaxFailures = DefaultBreakerSettings().MaxFailures
	}
	if settings.OpenTimeout <= 0 {
		settings.OpenTimeout = DefaultBreakerSettings().OpenTimeout
	}

	breaker := gobreaker.NewCircuitBreaker[[]domain.Route](gobreaker.Settings{
		Name:        "route-store",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxFailures
		},
		// a caller giving up is not a store failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			RouteStoreBreakerState.Set(breakerStateValue(to))
		},
	})

	return &CandidateSource{
		repo:     repo,
		breaker:  breaker,
		fallback: FallbackCatalog,
	}
}

// Load returns the candidate routes and whether they came from the fallback catalog.
// It returns no routes once ctx is done.
func (c *CandidateSource) Load(ctx context.Context) ([]domain.Route, bool) {
	if c.repo == nil {
		return c.useFallback(ctx, fallbackStoreError, errors.New("no route repository configured")), true
	}

	routes, err := c.breaker.Execute(func() ([]domain.Route, error) {
		return c.repo.ListRoutes(ctx)
	})
	if ctx.Err() != nil {
		// the request is already failing; nothing to degrade
		return nil, false
	}
	if err != nil {
		reason := fallbackStoreError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			reason = fallbackOpen
		}
		return c.useFallback(ctx, reason, err), true
	}
	if len(routes) == 0 {
		return c.useFallback(ctx, fallbackEmpty, nil), true
	}

	return routes, false
}

// Get looks a single route up in the store, then in the fallback catalog.
func (c *CandidateSource) Get(ctx context.Context, routeID string) (*domain.Route, error) {
	if c.repo != nil {
		route, err := c.repo.GetRoute(ctx, routeID)
		if err == nil && route != nil {
			return route, nil
		}
		if err != nil {
			logger.Warn("route lookup failed, checking built-in catalog", "trace_id", TraceIDFromContext(ctx), "route_id", routeID, "error", err)
		}
	}

	for _, r := range c.fallback() {
		if r.ID == routeID {
			return &r, nil
		}
	}
	return nil, domain.ErrRouteNotFound
}

func (c *CandidateSource) State() gobreaker.State {
	return c.breaker.State()
}

func (c *CandidateSource) useFallback(ctx context.Context, reason string, err error) []domain.Route {
	CandidateFallbackTotal.WithLabelValues(reason).Inc()
	args := []any{"trace_id", TraceIDFromContext(ctx), "reason", reason}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Warn("serving built-in route catalog", args...)
	return c.fallback()
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
