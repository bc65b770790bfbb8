// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package config

import (
	"fmt"
	"time"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Geocoder  GeocoderConfig  `koanf:"geocoder"`
	Oracle    OracleConfig    `koanf:"oracle"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Tracing   TracingConfig   `koanf:"tracing"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`          // write timeout; must exceed the oracle budget
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // graceful drain window
	Environment     string        `koanf:"environment"`      // development or production
	SwaggerEnabled  bool          `koanf:"swagger_enabled"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Store drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// DatabaseConfig selects and tunes the vendor/event store.
type DatabaseConfig struct {
	Driver       string        `koanf:"driver"` // duckdb or postgres
	Path         string        `koanf:"path"`   // duckdb file, ":memory:" allowed
	MaxMemory    string        `koanf:"max_memory"`
	Threads      int           `koanf:"threads"` // 0 = runtime.NumCPU()
	SeedDemoData bool          `koanf:"seed_demo_data"`
	DSN          string        `koanf:"dsn"` // postgres connection string
	MaxConns     int32         `koanf:"max_conns"`
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// Geocode cache backends.
const (
	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendBadger = "badger"
	CacheBackendRedis  = "redis"
)

// GeocoderConfig configures the location lookup used for the radius filter.
type GeocoderConfig struct {
	Enabled           bool           `koanf:"enabled"`
	BaseURL           string         `koanf:"base_url"`
	APIKey            string         `koanf:"api_key"` // sent as "key" for LocationIQ-style hosts
	UserAgent         string         `koanf:"user_agent"`
	CountryCodes      string         `koanf:"country_codes"` // comma separated ISO codes, optional
	Timeout           time.Duration  `koanf:"timeout"`
	RequestsPerSecond float64        `koanf:"requests_per_second"`
	Cache             GeoCacheConfig `koanf:"cache"`
}

// GeoCacheConfig configures the read-through geocode cache.
type GeoCacheConfig struct {
	Backend    string        `koanf:"backend"`
	TTL        time.Duration `koanf:"ttl"`
	Capacity   int           `koanf:"capacity"`    // memory backend only
	BadgerPath string        `koanf:"badger_path"` // badger backend only
	GCSchedule string        `koanf:"gc_schedule"` // cron spec for badger value-log GC
	RedisURL   string        `koanf:"redis_url"`
	KeyPrefix  string        `koanf:"key_prefix"`
}

// Oracle providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// OracleConfig configures the language-model ranking service.
type OracleConfig struct {
	Provider    string        `koanf:"provider"`
	BaseURL     string        `koanf:"base_url"` // OpenAI-compatible endpoint root
	APIKey      string        `koanf:"api_key"`
	Model       string        `koanf:"model"`
	Temperature float64       `koanf:"temperature"`
	MaxTokens   int           `koanf:"max_tokens"`
	Timeout     time.Duration `koanf:"timeout"`      // per attempt
	MaxAttempts int           `koanf:"max_attempts"` // first call plus at most one retry
}

// RecommendConfig holds the pipeline bounds.
type RecommendConfig struct {
	RadiusMiles          float64 `koanf:"radius_miles"`
	MaxCandidates        int     `koanf:"max_candidates"`
	MaxRecommendations   int     `koanf:"max_recommendations"`
	FilterConcurrency    int     `koanf:"filter_concurrency"` // 0 = one goroutine per category
	MaxDescriptionLength int     `koanf:"max_description_length"`
}

// Auth modes.
const (
	AuthModeJWT  = "jwt"
	AuthModeNone = "none"
)

// SecurityConfig holds inbound request protection.
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"`
	JWTSecret         string        `koanf:"jwt_secret"` // HS256 secret of the managed auth provider
	JWTIssuer         string        `koanf:"jwt_issuer"`
	JWTAudience       string        `koanf:"jwt_audience"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	AuthzPolicyPath   string        `koanf:"authz_policy_path"` // Casbin CSV; empty uses the built-in policy
	AuthzCacheTTL     time.Duration `koanf:"authz_cache_ttl"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Trace exporters.
const (
	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
	TraceExporterOTLP   = "otlp"
)

// TracingConfig selects the OpenTelemetry span exporter. With the "none"
// exporter spans are not recorded.
type TracingConfig struct {
	Exporter     string  `koanf:"exporter"`
	OTLPEndpoint string  `koanf:"otlp_endpoint"` // host:port of an OTLP/HTTP collector
	OTLPInsecure bool    `koanf:"otlp_insecure"`
	SampleRatio  float64 `koanf:"sample_ratio"`
	ServiceName  string  `koanf:"service_name"`
}

// IsProduction reports whether production checks apply.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
