package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 30*time.Second, cfg.ContentAPITimeout)
	assert.False(t, cfg.FreeAccess)
	assert.True(t, cfg.EnableTopics)
	assert.Equal(t, 5*time.Minute, cfg.TrendsCacheTTL)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CONTENT_API_URL", "https://api.example.com")
	t.Setenv("CONTENT_API_TIMEOUT", "45s")
	t.Setenv("FREE_ACCESS", "true")
	t.Setenv("TRENDS_CACHE_TTL", "120")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.ContentAPIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.ContentAPITimeout)
	assert.True(t, cfg.FreeAccess)
	// Bare integers are treated as seconds.
	assert.Equal(t, 120*time.Second, cfg.TrendsCacheTTL)
}

func TestValidate_ProductionRequiresWalletForGatedAccess(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WALLET_URL")

	t.Setenv("WALLET_URL", "https://wallet.example.com")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_ProductionFreeAccessNeedsNoWallet(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("FREE_ACCESS", "true")

	_, err := LoadConfig()
	assert.NoError(t, err)
}

func TestValidate_AuthRequiresSecretInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("FREE_ACCESS", "true")
	t.Setenv("AUTH_REQUIRED", "true")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
