package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables. It is the single source of truth for runtime parameters; the
// storefront base URL in particular lives only here.
type Config struct {
	Port string
	Env  string

	Storefront StorefrontConfig
	Stock      StockConfig
	// CORSAllowedHosts are origin hosts permitted to call the console API.
	CORSAllowedHosts []string
}

// StorefrontConfig contains storefront backend connection parameters.
type StorefrontConfig struct {
	// BaseURL is the API root every resource call is made against.
	BaseURL string
	// AssetBaseURL is the static-asset root for relative image paths.
	// Empty means derived from BaseURL.
	AssetBaseURL string
	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration
}

// StockConfig contains stock-screen parameters.
type StockConfig struct {
	// LowStockThreshold is the inclusive upper bound for the "Low Stock"
	// status label.
	LowStockThreshold int
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")

	// Storefront backend
	cfg.Storefront = StorefrontConfig{
		BaseURL:      getEnv("API_BASE_URL", ""),
		AssetBaseURL: getEnv("ASSET_BASE_URL", ""),
	}

	var err error
	if cfg.Storefront.RequestTimeout, err = parseDurationEnv("REQUEST_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	// Stock screen
	cfg.Stock = StockConfig{
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 10),
	}
	if cfg.Stock.LowStockThreshold < 0 {
		return nil, errors.New("LOW_STOCK_THRESHOLD must not be negative")
	}

	// CORS
	cfg.CORSAllowedHosts = splitEnvList("CORS_ALLOWED_HOSTS", "localhost:3000,127.0.0.1:3000")

	if cfg.Storefront.BaseURL == "" {
		return nil, errors.New("storefront configuration incomplete: ensure API_BASE_URL is set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}

// splitEnvList reads a comma-separated environment variable into a clean slice.
func splitEnvList(key, def string) []string {
	raw := getEnv(key, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
