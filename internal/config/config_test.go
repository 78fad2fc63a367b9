package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://backend.example.com/api")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("LOW_STOCK_THRESHOLD", "")
	t.Setenv("CORS_ALLOWED_HOSTS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "https://backend.example.com/api", cfg.Storefront.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Storefront.RequestTimeout)
	assert.Equal(t, 10, cfg.Stock.LowStockThreshold)
	assert.Equal(t, []string{"localhost:3000", "127.0.0.1:3000"}, cfg.CORSAllowedHosts)
}

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://backend.example.com/api")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("LOW_STOCK_THRESHOLD", "5")
	t.Setenv("CORS_ALLOWED_HOSTS", "console.example.com, admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Storefront.RequestTimeout)
	assert.Equal(t, 5, cfg.Stock.LowStockThreshold)
	assert.Equal(t, []string{"console.example.com", "admin.example.com"}, cfg.CORSAllowedHosts)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://backend.example.com/api")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_TIMEOUT")
}

func TestLoadRejectsNegativeThreshold(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://backend.example.com/api")
	t.Setenv("LOW_STOCK_THRESHOLD", "-1")

	_, err := Load()
	require.Error(t, err)
}
