package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Upstream content API
	ContentAPIBaseURL string
	ContentAPITimeout time.Duration
	FreeAccess        bool

	// Paywall settlement
	WalletURL     string
	WalletTimeout time.Duration

	// Graph appearance overrides, loaded from YAML when set
	PaletteFile string

	// Caching
	TrendsCacheTTL     time.Duration
	SentimentsCacheTTL time.Duration

	// Logging
	LogLevel string

	// Authentication
	JWTSecret    string
	JWTIssuer    string
	AuthRequired bool

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
	EnableTopics  bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		// Upstream content API
		ContentAPIBaseURL: getEnv("CONTENT_API_URL", "http://localhost:9000"),
		ContentAPITimeout: getEnvDuration("CONTENT_API_TIMEOUT", 30*time.Second),
		FreeAccess:        getEnvBool("FREE_ACCESS", false),

		// Paywall settlement
		WalletURL:     getEnv("WALLET_URL", ""),
		WalletTimeout: getEnvDuration("WALLET_TIMEOUT", 20*time.Second),

		// Graph appearance
		PaletteFile: getEnv("PALETTE_FILE", ""),

		// Caching
		TrendsCacheTTL:     getEnvDuration("TRENDS_CACHE_TTL", 5*time.Minute),
		SentimentsCacheTTL: getEnvDuration("SENTIMENTS_CACHE_TTL", 5*time.Minute),

		// Authentication
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTIssuer:    getEnv("JWT_ISSUER", "mindmesh-backend"),
		AuthRequired: getEnvBool("AUTH_REQUIRED", false),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		EnableTopics:  getEnvBool("ENABLE_TOPICS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.ContentAPIBaseURL == "" {
		return fmt.Errorf("CONTENT_API_URL is required")
	}
	if c.Environment == "production" {
		if c.AuthRequired && c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when AUTH_REQUIRED is set in production")
		}
		if !c.FreeAccess && c.WalletURL == "" {
			return fmt.Errorf("WALLET_URL is required for gated access in production")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
