package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hurghada-dream/go_backend/internal/domain/money"
)

// chdir changes the working directory to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	unsetEnv(t, "HTTP_ADDR", "CORS_ALLOW_ORIGIN", "STORE_DRIVER", "SUPABASE_URL", "SUPABASE_ANON_KEY", "DEFAULT_CURRENCY", "SYNC_INTERVAL", "QUOTE_DRAFT_TTL", "AGENCY_NAME")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
	assert.Equal(t, "badger", cfg.StoreDriver)
	assert.Equal(t, 3*time.Second, cfg.SyncInterval)
	assert.Equal(t, 12*time.Hour, cfg.QuoteDraftTTL)
	assert.Equal(t, "EGP", cfg.DefaultCurrency)

	s := cfg.SeedSettings()
	assert.Equal(t, "Hurghada Dream", s.AgencyName)
	assert.False(t, s.RemoteEnabled())
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DEFAULT_CURRENCY", "EUR")
	t.Setenv("SYNC_INTERVAL", "10s")
	t.Setenv("SUPABASE_URL", "https://x.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("AGENCY_NAME", "Red Sea Trips")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.SyncInterval)

	s := cfg.SeedSettings()
	assert.Equal(t, money.EUR, s.Currency)
	assert.Equal(t, "Red Sea Trips", s.AgencyName)
	assert.True(t, s.RemoteEnabled())
}

func TestLoadRejectsBadCurrency(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DEFAULT_CURRENCY", "GBP")
	_, err := Load()
	assert.ErrorContains(t, err, "DEFAULT_CURRENCY")
}

func TestLoadRejectsBadInterval(t *testing.T) {
	chdir(t, t.TempDir())
	unsetEnv(t, "DEFAULT_CURRENCY")
	t.Setenv("SYNC_INTERVAL", "soon")
	_, err := Load()
	assert.Error(t, err)
}
