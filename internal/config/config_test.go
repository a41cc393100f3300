package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LINKEDIN_COOKIE", "")
	t.Setenv("LINKEDIN_CSRF_TOKEN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1, cfg.CooldownMinSeconds)
	assert.Equal(t, 5, cfg.CooldownMaxSeconds)
	assert.False(t, cfg.LiveDataEnabled())
}

func TestLoadProdRequiresCredentials(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LINKEDIN_COOKIE", "")
	t.Setenv("LINKEDIN_CSRF_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadProdWithCredentials(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LINKEDIN_COOKIE", "li_at=abc")
	t.Setenv("LINKEDIN_CSRF_TOKEN", "ajax:123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.LiveDataEnabled())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	_, err := Load()
	assert.Error(t, err, "unknown env must fail validation")

	t.Setenv("APP_ENV", "dev")
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("COOLDOWN_MIN_SECONDS", "9")
	t.Setenv("COOLDOWN_MAX_SECONDS", "2")
	_, err = Load()
	assert.Error(t, err, "cooldown max below min must fail validation")
}
