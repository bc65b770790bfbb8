// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
)

// Validate checks that required configuration is present and consistent.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDatabase,
		c.validateGeocoder,
		c.validateOracle,
		c.validateRecommend,
		c.validateSecurity,
		c.validateLogging,
		c.validateTracing,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.Environment != "development" && c.Server.Environment != "production" {
		return fmt.Errorf("ENVIRONMENT must be 'development' or 'production', got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=duckdb")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
		if c.Database.MaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be 'duckdb' or 'postgres', got %q", c.Database.Driver)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateGeocoder() error {
	if !c.Geocoder.Enabled {
		return nil
	}
	if err := validateHTTPURL(c.Geocoder.BaseURL, "GEOCODER_URL"); err != nil {
		return err
	}
	if c.Geocoder.UserAgent == "" {
		return fmt.Errorf("GEOCODER_USER_AGENT is required when GEOCODER_ENABLED=true")
	}
	if c.Geocoder.Timeout <= 0 {
		return fmt.Errorf("GEOCODER_TIMEOUT must be positive")
	}
	if c.Geocoder.RequestsPerSecond <= 0 {
		return fmt.Errorf("GEOCODER_RPS must be positive")
	}
	return c.validateGeoCache()
}

func (c *Config) validateGeoCache() error {
	gc := c.Geocoder.Cache
	switch gc.Backend {
	case CacheBackendNone:
		return nil
	case CacheBackendMemory:
		if gc.Capacity < 1 {
			return fmt.Errorf("GEOCODE_CACHE_CAPACITY must be at least 1")
		}
	case CacheBackendBadger:
		if gc.BadgerPath == "" {
			return fmt.Errorf("GEOCODE_CACHE_PATH is required when GEOCODE_CACHE_BACKEND=badger")
		}
		if _, err := cron.ParseStandard(gc.GCSchedule); err != nil {
			return fmt.Errorf("GEOCODE_CACHE_GC_SCHEDULE is invalid: %w", err)
		}
	case CacheBackendRedis:
		if gc.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when GEOCODE_CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("GEOCODE_CACHE_BACKEND must be one of none, memory, badger, redis; got %q", gc.Backend)
	}
	if gc.TTL <= 0 {
		return fmt.Errorf("GEOCODE_CACHE_TTL must be positive")
	}
	return nil
}

func (c *Config) validateOracle() error {
	switch c.Oracle.Provider {
	case ProviderOpenAI:
		if err := validateEndpointURL(c.Oracle.BaseURL, "ORACLE_BASE_URL"); err != nil {
			return err
		}
	case ProviderGemini:
	default:
		return fmt.Errorf("ORACLE_PROVIDER must be 'openai' or 'gemini', got %q", c.Oracle.Provider)
	}
	if c.Oracle.APIKey == "" {
		return fmt.Errorf("ORACLE_API_KEY is required")
	}
	if c.Oracle.Model == "" {
		return fmt.Errorf("ORACLE_MODEL is required")
	}
	if c.Oracle.Timeout <= 0 {
		return fmt.Errorf("ORACLE_TIMEOUT must be positive")
	}
	if c.Oracle.MaxAttempts < 1 || c.Oracle.MaxAttempts > 2 {
		return fmt.Errorf("ORACLE_MAX_ATTEMPTS must be 1 or 2 (at most one retry), got %d", c.Oracle.MaxAttempts)
	}
	if c.Oracle.Temperature < 0 || c.Oracle.Temperature > 2 {
		return fmt.Errorf("ORACLE_TEMPERATURE must be between 0 and 2")
	}
	if budget := c.Oracle.Timeout * 2; c.Oracle.MaxAttempts == 2 && budget >= c.Server.Timeout {
		logging.Warn().
			Dur("oracle_budget", budget).
			Dur("http_timeout", c.Server.Timeout).
			Msg("HTTP timeout is shorter than two oracle attempts; retries may be cut off")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.RadiusMiles <= 0 {
		return fmt.Errorf("RECOMMEND_RADIUS_MILES must be positive")
	}
	if r.MaxCandidates < 1 {
		return fmt.Errorf("RECOMMEND_MAX_CANDIDATES must be at least 1")
	}
	if r.MaxRecommendations < 1 || r.MaxRecommendations > r.MaxCandidates {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be between 1 and RECOMMEND_MAX_CANDIDATES")
	}
	if r.FilterConcurrency < 0 {
		return fmt.Errorf("RECOMMEND_FILTER_CONCURRENCY must not be negative")
	}
	if r.MaxDescriptionLength < 0 {
		return fmt.Errorf("RECOMMEND_MAX_DESCRIPTION must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	switch c.Security.AuthMode {
	case AuthModeJWT:
		if c.Security.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when AUTH_MODE=jwt")
		}
		if len(c.Security.JWTSecret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 characters")
		}
	case AuthModeNone:
		if c.IsProduction() {
			return fmt.Errorf("AUTH_MODE=none is not allowed when ENVIRONMENT=production")
		}
	default:
		return fmt.Errorf("AUTH_MODE must be 'jwt' or 'none', got %q", c.Security.AuthMode)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" && c.IsProduction() {
			return fmt.Errorf("CORS_ORIGINS must not contain '*' when ENVIRONMENT=production")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a recognised level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'console', got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateTracing() error {
	switch c.Tracing.Exporter {
	case TraceExporterNone, TraceExporterStdout:
	case TraceExporterOTLP:
		if c.Tracing.OTLPEndpoint == "" {
			return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when OTEL_TRACES_EXPORTER=otlp")
		}
	default:
		return fmt.Errorf("OTEL_TRACES_EXPORTER must be 'none', 'stdout' or 'otlp', got %q", c.Tracing.Exporter)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("OTEL_TRACES_SAMPLE_RATIO must be between 0 and 1, got %g", c.Tracing.SampleRatio)
	}
	return nil
}

// validateHTTPURL accepts http(s) base URLs without path or query.
func validateHTTPURL(rawURL, fieldName string) error {
	u, err := parseHTTPURL(rawURL, fieldName)
	if err != nil {
		return err
	}
	if u.Path != "" && u.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, u.Path)
	}
	return nil
}

// validateEndpointURL accepts http(s) URLs with a path prefix such as /v1.
func validateEndpointURL(rawURL, fieldName string) error {
	_, err := parseHTTPURL(rawURL, fieldName)
	return err
}

func parseHTTPURL(rawURL, fieldName string) (*url.URL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%s is required", fieldName)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%s host is required", fieldName)
	}
	if u.RawQuery != "" {
		return nil, fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, u.RawQuery)
	}
	return u, nil
}
