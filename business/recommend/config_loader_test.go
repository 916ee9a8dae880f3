//go:build !integration

package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	assert.InDelta(t, 1.0, DefaultConfig().Weights.Sum(), 1e-9)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_OverridesWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.yaml")
	body := `
weights:
  preference: 0.30
  history: 0.15
  weather: 0.20
  time: 0.15
  safety: 0.10
  popularity: 0.05
  novelty: 0.05
max_limit: 20
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.30, cfg.Weights.Preference, 1e-9)
	assert.Equal(t, 20, cfg.MaxLimit)
	assert.Equal(t, 6, cfg.DefaultLimit)
	assert.InDelta(t, 0.7, cfg.Thresholds.Weather, 1e-9)
}

func TestParseConfig_RejectsBadWeights(t *testing.T) {
	_, err := ParseConfig([]byte("weights:\n  preference: 0.5\n"))
	assert.ErrorContains(t, err, "sum to 1")

	_, err = ParseConfig([]byte(`
weights:
  preference: 1.25
  history: -0.25
  weather: 0
  time: 0
  safety: 0
  popularity: 0
  novelty: 0
`))
	assert.ErrorContains(t, err, "non-negative")

	_, err = ParseConfig([]byte("weights: [1, 2]"))
	assert.Error(t, err)
}

func TestNormalizeLimit(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 6, cfg.normalizeLimit(0))
	assert.Equal(t, 6, cfg.normalizeLimit(-3))
	assert.Equal(t, 4, cfg.normalizeLimit(4))
	assert.Equal(t, 50, cfg.normalizeLimit(500))

	cfg = cfg.WithLimits(10, 20)
	assert.Equal(t, 10, cfg.normalizeLimit(0))
	assert.Equal(t, 20, cfg.normalizeLimit(21))
}
