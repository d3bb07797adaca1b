// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// the server, dialog engine, retrieval scoring profile, and optional features.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Retrieval profiles control the low-confidence threshold.
const (
	ProfileDefault = "default" // lowConfidence when topScore < 5
	ProfileStrict  = "strict"  // lowConfidence when topScore < 6
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir string // Data directory for the SQLite ticket log
	KBPath  string // Optional local knowledge-base JSON file (empty = embedded seed)

	// Dialog Configuration
	PageSize        int    // Result cards per page
	DefaultLanguage string // "en" or "zh"

	// Session Configuration
	SessionTTL           time.Duration // Idle sessions older than this are dropped
	SessionSweepInterval time.Duration // How often the sweeper runs

	// Retrieval Configuration (tunable scoring profile, see retrieve.Weights)
	RetrievalProfile     string
	RetrievalTokenWeight int
	RetrievalTitleWeight int
	RetrievalDomainBoost int
	RetrievalShortBonus  int
	RetrievalMaxResults  int

	// Tokenizer Configuration
	SegmenterEnabled bool // Load the gse dictionary segmenter for Chinese runs

	// Per-session rate limiting (token bucket)
	RateLimitTokens     float64 // Burst capacity per session
	RateLimitRefillRate float64 // Tokens refilled per second

	// Object store knowledge-base source (S3-compatible, e.g. Cloudflare R2)
	ObjStoreEnabled   bool
	ObjStoreEndpoint  string
	ObjStoreAccessKey string
	ObjStoreSecretKey string
	ObjStoreBucket    string
	ObjStoreKBKey     string

	// Sentry error reporting
	SentryDSN              string
	SentryEnvironment      string
	SentryRelease          string
	SentrySampleRate       float64
	SentryTracesSampleRate float64

	// Better Stack log shipping
	BetterStackToken    string
	BetterStackEndpoint string

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv(EnvPort, "10000"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, 30*time.Second),

		DataDir: getEnv(EnvDataDir, "./data"),
		KBPath:  getEnv(EnvKBPath, ""),

		PageSize:        getIntEnv(EnvPageSize, 3),
		DefaultLanguage: getEnv(EnvDefaultLanguage, "en"),

		SessionTTL:           getDurationEnv(EnvSessionTTL, 2*time.Hour),
		SessionSweepInterval: getDurationEnv(EnvSessionSweepInterval, 10*time.Minute),

		RetrievalProfile:     getEnv(EnvRetrievalProfile, ProfileDefault),
		RetrievalTokenWeight: getIntEnv(EnvRetrievalTokenWeight, 3),
		RetrievalTitleWeight: getIntEnv(EnvRetrievalTitleWeight, 2),
		RetrievalDomainBoost: getIntEnv(EnvRetrievalDomainBoost, 10),
		RetrievalShortBonus:  getIntEnv(EnvRetrievalShortBonus, 2),
		RetrievalMaxResults:  getIntEnv(EnvRetrievalMaxResults, 50),

		SegmenterEnabled: getBoolEnv(EnvSegmenterEnabled, false),

		RateLimitTokens:     getFloatEnv(EnvRateLimitTokens, 6),
		RateLimitRefillRate: getFloatEnv(EnvRateLimitRefillRate, 0.5),

		ObjStoreEnabled:   getBoolEnv(EnvObjStoreEnabled, false),
		ObjStoreEndpoint:  getEnv(EnvObjStoreEndpoint, ""),
		ObjStoreAccessKey: getEnv(EnvObjStoreAccessKey, ""),
		ObjStoreSecretKey: getEnv(EnvObjStoreSecretKey, ""),
		ObjStoreBucket:    getEnv(EnvObjStoreBucket, ""),
		ObjStoreKBKey:     getEnv(EnvObjStoreKBKey, "kb.json"),

		SentryDSN:              getEnv(EnvSentryDSN, ""),
		SentryEnvironment:      getEnv(EnvSentryEnvironment, "production"),
		SentryRelease:          getEnv(EnvSentryRelease, ""),
		SentrySampleRate:       getFloatEnv(EnvSentrySampleRate, 1.0),
		SentryTracesSampleRate: getFloatEnv(EnvSentryTracesSampleRate, 0.0),

		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvPageSize, c.PageSize))
	}
	if c.DefaultLanguage != "en" && c.DefaultLanguage != "zh" {
		errs = append(errs, fmt.Errorf("%s must be en or zh, got %q", EnvDefaultLanguage, c.DefaultLanguage))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvSessionTTL, c.SessionTTL))
	}
	if c.SessionSweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvSessionSweepInterval, c.SessionSweepInterval))
	}
	if c.RetrievalProfile != ProfileDefault && c.RetrievalProfile != ProfileStrict {
		errs = append(errs, fmt.Errorf("%s must be %s or %s, got %q", EnvRetrievalProfile, ProfileDefault, ProfileStrict, c.RetrievalProfile))
	}
	if c.RetrievalMaxResults <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvRetrievalMaxResults, c.RetrievalMaxResults))
	}
	if c.RateLimitTokens <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvRateLimitTokens, c.RateLimitTokens))
	}
	if c.RateLimitRefillRate <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvRateLimitRefillRate, c.RateLimitRefillRate))
	}
	if c.ObjStoreEnabled {
		if c.ObjStoreEndpoint == "" {
			errs = append(errs, errors.New(EnvObjStoreEndpoint+" is required when the object store is enabled"))
		}
		if c.ObjStoreAccessKey == "" {
			errs = append(errs, errors.New(EnvObjStoreAccessKey+" is required when the object store is enabled"))
		}
		if c.ObjStoreSecretKey == "" {
			errs = append(errs, errors.New(EnvObjStoreSecretKey+" is required when the object store is enabled"))
		}
		if c.ObjStoreBucket == "" {
			errs = append(errs, errors.New(EnvObjStoreBucket+" is required when the object store is enabled"))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// LowConfidenceThreshold returns the retrieval confidence threshold for the
// configured profile.
func (c *Config) LowConfidenceThreshold() int {
	if c.RetrievalProfile == ProfileStrict {
		return 6
	}
	return 5
}

// SQLitePath returns the full path to the SQLite ticket database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "tickets.db")
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
