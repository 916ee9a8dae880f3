//go:build !integration

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"runGuard/domain"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRoutes(t *testing.T) {
	routes, err := readRoutes(strings.NewReader(`[
		{"id":"canal-path","name":"Canal Path","distance_km":6.5,"difficulty":3,"terrain":"paved",
		 "time_suitability":{"morning":0.9},"weather_suitability":{"rain":0.6},"features":["water"]},
		{"id":"ridge-run","name":"Ridge Run","distance_km":12,"difficulty":8,"terrain":"trail"}
	]`))
	require.NoError(t, err)
	require.Len(t, routes, 2)

	assert.Equal(t, 1, routes[0].CatalogOrder)
	assert.Equal(t, 2, routes[1].CatalogOrder)
	assert.InDelta(t, 0.9, routes[0].TimeSuitability.Data()[domain.BucketMorning], 1e-9)
	assert.InDelta(t, 0.6, routes[0].WeatherSuitability.Data()[domain.ConditionRain], 1e-9)
	assert.True(t, routes[0].HasFeature("water"))
}

func TestReadRoutes_Rejects(t *testing.T) {
	for name, body := range map[string]string{
		"malformed":  `[{"id":`,
		"missing id": `[{"name":"x","difficulty":3}]`,
		"duplicate":  `[{"id":"a","difficulty":3},{"id":"a","difficulty":4}]`,
		"difficulty": `[{"id":"a","difficulty":11}]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := readRoutes(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestRunRecommend_Offline(t *testing.T) {
	var out bytes.Buffer
	err := runRecommend(context.Background(), &out, recommendOpts{
		userID:      "runner-1",
		temperature: 18,
		condition:   string(domain.ConditionClear),
		humidity:    50,
		wind:        5,
		timeOfDay:   string(domain.BucketMorning),
		limit:       2,
		offline:     true,
	})
	require.NoError(t, err)

	var recs []domain.Recommendation
	require.NoError(t, json.Unmarshal(out.Bytes(), &recs))
	assert.Len(t, recs, 2)
	for _, r := range recs {
		assert.True(t, strings.HasPrefix(r.Route.ID, "fallback-"))
		assert.GreaterOrEqual(t, r.Score.Value, 0.0)
		assert.LessOrEqual(t, r.Score.Value, 1.0)
	}
}

func TestRunRecommend_InvalidWeather(t *testing.T) {
	err := runRecommend(context.Background(), &bytes.Buffer{}, recommendOpts{
		userID:   "runner-1",
		humidity: 140,
		offline:  true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRootCmd_HasCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"migrate", "seed", "run", "recommend", "token"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestNewRunRecord(t *testing.T) {
	now := time.Date(2026, 6, 3, 6, 30, 0, 0, time.UTC)

	rec, err := newRunRecord(runOpts{userID: "runner-1", routeID: "canal-path", distance: 6.5, duration: 38, effort: 5, rating: 4}, now)
	require.NoError(t, err)
	assert.Equal(t, now, rec.CompletedAt)
	assert.Equal(t, "canal-path", rec.RouteID)

	rec, err = newRunRecord(runOpts{userID: "runner-1", routeID: "canal-path", distance: 5, at: "2026-06-01T18:00:00+02:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 1, 16, 0, 0, 0, time.UTC), rec.CompletedAt)
}

func TestNewRunRecord_Rejects(t *testing.T) {
	now := time.Now()
	for name, opts := range map[string]runOpts{
		"missing route":  {userID: "runner-1", distance: 5},
		"zero distance":  {userID: "runner-1", routeID: "r"},
		"rating too big": {userID: "runner-1", routeID: "r", distance: 5, rating: 6},
		"bad time":       {userID: "runner-1", routeID: "r", distance: 5, at: "yesterday"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := newRunRecord(opts, now)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
