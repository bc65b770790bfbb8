// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/vendormatch/config.yaml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults. File and env layers override them.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         90 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
			SwaggerEnabled:  true,
		},
		Database: DatabaseConfig{
			Driver:       DriverDuckDB,
			Path:         "/data/vendormatch.duckdb",
			MaxMemory:    "512MB",
			Threads:      0,
			SeedDemoData: false,
			MaxConns:     10,
			QueryTimeout: 5 * time.Second,
		},
		Geocoder: GeocoderConfig{
			Enabled:           true,
			BaseURL:           "https://nominatim.openstreetmap.org",
			UserAgent:         "vendormatch/1.0 (+https://github.com/sreshtalluri/arangetaram-planning)",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 1, // Nominatim usage policy
			Cache: GeoCacheConfig{
				Backend:    CacheBackendMemory,
				TTL:        30 * 24 * time.Hour,
				Capacity:   5000,
				BadgerPath: "/data/geocache",
				GCSchedule: "@every 30m",
				KeyPrefix:  "vendormatch:geocode:",
			},
		},
		Oracle: OracleConfig{
			Provider:    ProviderOpenAI,
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-4o-mini",
			Temperature: 0.3,
			MaxTokens:   2000,
			Timeout:     30 * time.Second,
			MaxAttempts: 2,
		},
		Recommend: RecommendConfig{
			RadiusMiles:          50,
			MaxCandidates:        10,
			MaxRecommendations:   3,
			FilterConcurrency:    0,
			MaxDescriptionLength: 400,
		},
		Security: SecurityConfig{
			AuthMode:        AuthModeJWT,
			JWTAudience:     "authenticated",
			RateLimitReqs:   30,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{},
			AuthzCacheTTL:   5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Tracing: TracingConfig{
			Exporter:     TraceExporterNone,
			OTLPEndpoint: "localhost:4318",
			SampleRatio:  1,
			ServiceName:  "vendormatch",
		},
	}
}

// LoadWithKoanf loads configuration in three layers, later layers winning:
//  1. built-in defaults
//  2. optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. environment variables listed in envMappings
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as env strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",
	"swagger_enabled":  "server.swagger_enabled",

	// Store
	"db_driver":         "database.driver",
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",
	"seed_demo_data":    "database.seed_demo_data",
	"database_url":      "database.dsn",
	"db_max_conns":      "database.max_conns",
	"db_query_timeout":  "database.query_timeout",

	// Geocoder
	"geocoder_enabled":          "geocoder.enabled",
	"geocoder_url":              "geocoder.base_url",
	"geocoder_api_key":          "geocoder.api_key",
	"geocoder_user_agent":       "geocoder.user_agent",
	"geocoder_country_codes":    "geocoder.country_codes",
	"geocoder_timeout":          "geocoder.timeout",
	"geocoder_rps":              "geocoder.requests_per_second",
	"geocode_cache_backend":     "geocoder.cache.backend",
	"geocode_cache_ttl":         "geocoder.cache.ttl",
	"geocode_cache_capacity":    "geocoder.cache.capacity",
	"geocode_cache_path":        "geocoder.cache.badger_path",
	"geocode_cache_gc_schedule": "geocoder.cache.gc_schedule",
	"redis_url":                 "geocoder.cache.redis_url",
	"geocode_cache_key_prefix":  "geocoder.cache.key_prefix",

	// Oracle
	"oracle_provider":     "oracle.provider",
	"oracle_base_url":     "oracle.base_url",
	"oracle_api_key":      "oracle.api_key",
	"openai_api_key":      "oracle.api_key",
	"oracle_model":        "oracle.model",
	"oracle_temperature":  "oracle.temperature",
	"oracle_max_tokens":   "oracle.max_tokens",
	"oracle_timeout":      "oracle.timeout",
	"oracle_max_attempts": "oracle.max_attempts",

	// Recommendation bounds
	"recommend_radius_miles":       "recommend.radius_miles",
	"recommend_max_candidates":     "recommend.max_candidates",
	"recommend_max_results":        "recommend.max_recommendations",
	"recommend_filter_concurrency": "recommend.filter_concurrency",
	"recommend_max_description":    "recommend.max_description_length",

	// Security
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"jwt_issuer":          "security.jwt_issuer",
	"jwt_audience":        "security.jwt_audience",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"authz_policy_path":   "security.authz_policy_path",
	"authz_cache_ttl":     "security.authz_cache_ttl",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Tracing
	"otel_traces_exporter":        "tracing.exporter",
	"otel_exporter_otlp_endpoint": "tracing.otlp_endpoint",
	"otel_exporter_otlp_insecure": "tracing.otlp_insecure",
	"otel_traces_sample_ratio":    "tracing.sample_ratio",
	"otel_service_name":           "tracing.service_name",
}

// envTransformFunc maps an environment variable name to its koanf path, or
// "" to skip it.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DATABASE_URL -> database.dsn
//   - OPENAI_API_KEY -> oracle.api_key
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
