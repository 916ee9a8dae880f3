//go:build !integration

package recommend

import (
	"context"
	"errors"
	"sync"

	"runGuard/domain"
)

var errStore = errors.New("store down")

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]domain.UserPreferenceProfile
	getErr   error
	saveErr  error
	saves    int
	// block makes GetProfile wait for the caller's context
	block bool
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]domain.UserPreferenceProfile)}
}

func (f *fakeProfileRepo) GetProfile(ctx context.Context, userID string) (*domain.UserPreferenceProfile, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProfileRepo) SaveProfile(_ context.Context, profile domain.UserPreferenceProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.profiles[profile.UserID] = profile
	return nil
}

type fakeHistoryRepo struct {
	records []domain.HistoryRecord
	err     error
}

func (f *fakeHistoryRepo) GetRecentHistory(_ context.Context, _ string, limit int) ([]domain.HistoryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

type fakeRouteRepo struct {
	mu     sync.Mutex
	routes []domain.Route
	err    error
	calls  int
	block  bool
}

func (f *fakeRouteRepo) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Route, len(f.routes))
	copy(out, f.routes)
	return out, nil
}

func (f *fakeRouteRepo) GetRoute(_ context.Context, routeID string) (*domain.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.routes {
		if r.ID == routeID {
			return &r, nil
		}
	}
	return nil, nil
}

type fakeFeedbackRepo struct {
	mu      sync.Mutex
	entries []domain.RouteFeedback
	err     error
}

func (f *fakeFeedbackRepo) SaveFeedback(_ context.Context, fb domain.RouteFeedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, fb)
	return nil
}

func route(id string, distance float64, difficulty int) domain.Route {
	return domain.Route{
		ID:           id,
		Name:         id,
		DistanceKm:   distance,
		Difficulty:   difficulty,
		Terrain:      "road",
		SafetyRating: 5,
		Popularity:   2.5,
		Lighting:     domain.LightingModerate,
	}
}

func clearWeather() domain.Weather {
	return domain.Weather{TemperatureC: 20, Condition: domain.ConditionClear, Humidity: 55, WindSpeedKmh: 5}
}
