package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 6, cfg.Recommend.DefaultLimit)
	assert.Equal(t, 50, cfg.Recommend.MaxLimit)
	assert.Equal(t, uint32(5), cfg.Recommend.BreakerFailures)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("RECOMMEND_DEFAULT_LIMIT", "10")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Recommend.DefaultLimit)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "pw")

	_, err := Load()
	assert.EqualError(t, err, "missing jwt secret")

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "")

	_, err = Load()
	assert.EqualError(t, err, "missing database password")
}

func TestLoadRejectsBadLimits(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("RECOMMEND_DEFAULT_LIMIT", "20")
	t.Setenv("RECOMMEND_MAX_LIMIT", "10")

	_, err := Load()
	assert.Error(t, err)
}
