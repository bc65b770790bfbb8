// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Recommend.RadiusMiles != 50 {
		t.Errorf("Recommend.RadiusMiles = %v, want 50", cfg.Recommend.RadiusMiles)
	}
	if cfg.Recommend.MaxCandidates != 10 {
		t.Errorf("Recommend.MaxCandidates = %d, want 10", cfg.Recommend.MaxCandidates)
	}
	if cfg.Recommend.MaxRecommendations != 3 {
		t.Errorf("Recommend.MaxRecommendations = %d, want 3", cfg.Recommend.MaxRecommendations)
	}
	if cfg.Oracle.MaxAttempts != 2 {
		t.Errorf("Oracle.MaxAttempts = %d, want 2", cfg.Oracle.MaxAttempts)
	}
	if cfg.Database.Driver != DriverDuckDB {
		t.Errorf("Database.Driver = %q, want duckdb", cfg.Database.Driver)
	}
	if cfg.Geocoder.Cache.Backend != CacheBackendMemory {
		t.Errorf("Geocoder.Cache.Backend = %q, want memory", cfg.Geocoder.Cache.Backend)
	}
	if cfg.Security.AuthMode != AuthModeJWT {
		t.Errorf("Security.AuthMode = %q, want jwt", cfg.Security.AuthMode)
	}
	if cfg.Oracle.APIKey != "" {
		t.Error("Oracle.APIKey should be empty by default")
	}
}

// setRequiredEnv sets the minimum environment for a valid configuration.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ORACLE_API_KEY", "sk-test")
	t.Setenv("JWT_SECRET", testSecret)
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/app")
	t.Setenv("ORACLE_TIMEOUT", "12s")
	t.Setenv("GEOCODE_CACHE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Database.Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/app" {
		t.Errorf("Database.DSN = %q", cfg.Database.DSN)
	}
	if cfg.Oracle.Timeout != 12*time.Second {
		t.Errorf("Oracle.Timeout = %v, want 12s", cfg.Oracle.Timeout)
	}
	if cfg.Oracle.APIKey != "sk-test" {
		t.Errorf("Oracle.APIKey = %q, want sk-test", cfg.Oracle.APIKey)
	}
	if cfg.Geocoder.Cache.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("Geocoder.Cache.RedisURL = %q", cfg.Geocoder.Cache.RedisURL)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	setRequiredEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 7070
recommend:
  radius_miles: 25
geocoder:
  enabled: false
oracle:
  model: gpt-4.1-mini
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("ORACLE_MODEL", "gpt-4o")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070 from file", cfg.Server.Port)
	}
	if cfg.Recommend.RadiusMiles != 25 {
		t.Errorf("Recommend.RadiusMiles = %v, want 25 from file", cfg.Recommend.RadiusMiles)
	}
	if cfg.Geocoder.Enabled {
		t.Error("Geocoder.Enabled should be false from file")
	}
	if cfg.Oracle.Model != "gpt-4o" {
		t.Errorf("Oracle.Model = %q, env should win over file", cfg.Oracle.Model)
	}
	if cfg.Recommend.MaxCandidates != 10 {
		t.Errorf("Recommend.MaxCandidates = %d, default should survive", cfg.Recommend.MaxCandidates)
	}
}

func TestLoadWithKoanf_MissingSecrets(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("ORACLE_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("expected error without ORACLE_API_KEY")
	}
	if !strings.Contains(err.Error(), "ORACLE_API_KEY") {
		t.Errorf("error should name ORACLE_API_KEY, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"DATABASE_URL", "database.dsn"},
		{"OPENAI_API_KEY", "oracle.api_key"},
		{"GEOCODE_CACHE_BACKEND", "geocoder.cache.backend"},
		{"RECOMMEND_RADIUS_MILES", "recommend.radius_miles"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}
