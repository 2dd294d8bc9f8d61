package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "badger", cfg.StoreDriver)
	assert.Equal(t, "regis-danos", cfg.SourceTag)
	assert.Equal(t, 15*time.Second, cfg.SendTimeout)
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, time.Second, cfg.BackoffUnit)
	assert.Equal(t, 4, cfg.EarlyShiftStartHour)
	assert.Equal(t, 13, cfg.LateShiftStartHour)
	assert.Equal(t, 12, cfg.EarlyFinalizeHour)
	assert.Equal(t, 21, cfg.LateFinalizeHour)
	assert.Equal(t, "BRC-ERC", cfg.EarlyShiftLabel)
	assert.Equal(t, "IRC-KRC", cfg.LateShiftLabel)
	assert.Equal(t, 50, cfg.MinRecords)
	assert.Equal(t, 23, cfg.ExpiryHour)
	assert.Equal(t, 59, cfg.ExpiryMinute)
	assert.Equal(t, 59, cfg.ExpirySecond)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MALETAS_LISTEN_ADDR", ":9090")
	t.Setenv("MALETAS_MIN_RECORDS", "10")
	t.Setenv("MALETAS_ENDPOINT_URL", "https://script.example.com/exec")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 10, cfg.MinRecords)
	assert.Equal(t, "https://script.example.com/exec", cfg.EndpointURL)
}

func TestLoadValidation(t *testing.T) {
	t.Run("unknown store driver", func(t *testing.T) {
		t.Setenv("MALETAS_STORE_DRIVER", "redis")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store_driver")
	})

	t.Run("postgres needs a url", func(t *testing.T) {
		t.Setenv("MALETAS_STORE_DRIVER", "postgres")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database_url")
	})

	t.Run("attempts must be positive", func(t *testing.T) {
		t.Setenv("MALETAS_MAX_ATTEMPTS", "0")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_attempts")
	})

	t.Run("hours must be in range", func(t *testing.T) {
		t.Setenv("MALETAS_EARLY_FINALIZE_HOUR", "24")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0-23")
	})
}
