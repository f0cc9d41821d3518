package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"ultrapopular/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// envconfig only applies defaults to unset variables, not empty ones.
	for _, k := range []string{
		"PORT", "DB_DSN", "CATALOG_SOURCE", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "LINK_BASE_URL",
		"SESSION_TTL", "SESSION_MAX", "TEMPLATES_DIR", "STATIC_DIR", "SUBMIT_RATE_PER_MIN",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, ":8081", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_SOURCE", "static")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("LINK_BASE_URL", "https://api.whatsapp.com/send")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, config.CatalogStatic, cfg.CatalogSource)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "https://api.whatsapp.com/send", cfg.LinkBaseURL)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := config.Default()
	cfg.Port = ""
	cfg.CatalogSource = "mongo"
	cfg.LinkBaseURL = "wa.me"
	cfg.SessionMax = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	_, err := config.Load()
	assert.Error(t, err)
}
