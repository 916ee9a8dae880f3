//go:build !integration

package recommend

import (
	"context"
	"testing"
	"time"

	"runGuard/domain"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateSource_StoreRoutes(t *testing.T) {
	repo := &fakeRouteRepo{routes: []domain.Route{route("a", 5, 5), route("b", 3, 2)}}
	src := NewCandidateSource(repo, DefaultBreakerSettings())

	routes, fallback := src.Load(context.Background())
	assert.False(t, fallback)
	require.Len(t, routes, 2)
	assert.Equal(t, "a", routes[0].ID)
}

func TestCandidateSource_FallbackIsDeterministic(t *testing.T) {
	src := NewCandidateSource(&fakeRouteRepo{err: errStore}, DefaultBreakerSettings())

	first, fallback := src.Load(context.Background())
	assert.True(t, fallback)
	second, _ := src.Load(context.Background())

	assert.GreaterOrEqual(t, len(first), 3)
	assert.Equal(t, first, second)
}

func TestCandidateSource_NilRepo(t *testing.T) {
	src := NewCandidateSource(nil, DefaultBreakerSettings())
	routes, fallback := src.Load(context.Background())
	assert.True(t, fallback)
	assert.Len(t, routes, len(FallbackCatalog()))
}

func TestCandidateSource_BreakerOpensAfterFailures(t *testing.T) {
	repo := &fakeRouteRepo{err: errStore}
	src := NewCandidateSource(repo, BreakerSettings{MaxFailures: 2, OpenTimeout: time.Hour})
	ctx := context.Background()

	src.Load(ctx)
	src.Load(ctx)
	assert.Equal(t, gobreaker.StateOpen, src.State())

	routes, fallback := src.Load(ctx)
	assert.True(t, fallback)
	assert.NotEmpty(t, routes)
	assert.Equal(t, 2, repo.calls, "open breaker does not reach the store")
}

func TestCandidateSource_CancelledCallerDoesNotTrip(t *testing.T) {
	repo := &fakeRouteRepo{err: context.Canceled}
	src := NewCandidateSource(repo, BreakerSettings{MaxFailures: 1, OpenTimeout: time.Hour})

	src.Load(context.Background())
	src.Load(context.Background())
	assert.Equal(t, gobreaker.StateClosed, src.State())
}

func TestCandidateSource_DoneContextSkipsFallback(t *testing.T) {
	repo := &fakeRouteRepo{block: true}
	src := NewCandidateSource(repo, DefaultBreakerSettings())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	routes, fromFallback := src.Load(ctx)
	assert.Empty(t, routes)
	assert.False(t, fromFallback)
}

func TestCandidateSource_Get(t *testing.T) {
	repo := &fakeRouteRepo{routes: []domain.Route{route("a", 5, 5)}}
	src := NewCandidateSource(repo, DefaultBreakerSettings())
	ctx := context.Background()

	r, err := src.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", r.ID)

	r, err = src.Get(ctx, "fallback-city-track")
	require.NoError(t, err)
	assert.Equal(t, "City Stadium Track", r.Name)

	_, err = src.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRouteNotFound)
}

func TestFallbackCatalog_ReturnsCopies(t *testing.T) {
	a := FallbackCatalog()
	a[0].Name = "changed"
	assert.NotEqual(t, "changed", FallbackCatalog()[0].Name)
	for i, r := range FallbackCatalog() {
		assert.Equal(t, i+1, r.CatalogOrder)
	}
}
