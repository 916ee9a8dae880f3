package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "production", "debug")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "production", "error") })

	Info("route ranked", "route_id", "r-1", "score", 0.75)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "route ranked", entry["message"])
	assert.Equal(t, "r-1", entry["route_id"])
	assert.InDelta(t, 0.75, entry["score"], 1e-9)
}

func TestErrorInKeyPosition(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "production", "debug")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "production", "error") })

	Error("Failed to save profile", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "production", "warn")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "production", "error") })

	Debug("hidden")
	Info("hidden")
	assert.Empty(t, buf.String())

	Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestErrorAsValue(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "production", "debug")
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, "production", "error") })

	Warn("catalog fallback", "reason", "store_error", "error", errors.New("connection refused"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "store_error", entry["reason"])
	assert.Equal(t, "connection refused", entry["error"])
}
