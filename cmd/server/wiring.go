// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package main

import (
	"context"
	"fmt"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/geocode"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/oracle"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store/duckdb"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store/postgres"
)

// openStore opens the configured backend. Postgres gets its schema applied
// so a fresh database is usable immediately.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (store.Store, error) {
	switch cfg.Driver {
	case config.DriverDuckDB, "":
		return duckdb.New(cfg)
	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := db.ApplySchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// geocoderParts is everything main needs to own from the geocode package.
type geocoderParts struct {
	geocoder    *geocode.Geocoder
	cache       geocode.Cache // nil when caching is off
	maintenance *geocode.Maintenance
}

func (p geocoderParts) Close() error {
	if p.cache == nil {
		return nil
	}
	return p.cache.Close()
}

// buildGeocoder assembles provider, cache tier and maintenance schedule.
// A broken cache tier is logged and skipped; geocoding still works uncached.
func buildGeocoder(ctx context.Context, cfg config.GeocoderConfig) geocoderParts {
	var parts geocoderParts

	if cfg.Enabled {
		c, err := geocode.NewCache(ctx, cfg.Cache)
		if err != nil {
			logging.Warn().Err(err).Str("backend", cfg.Cache.Backend).Msg("Geocode cache unavailable, continuing without it")
		} else if c != nil {
			parts.cache = c
			parts.maintenance = geocode.NewMaintenance(c, cfg.Cache.GCSchedule)
		}
	}

	var opts []geocode.Option
	if parts.cache != nil {
		opts = append(opts, geocode.WithCache(parts.cache))
	}
	parts.geocoder = geocode.New(cfg, geocode.NewNominatimProvider(cfg), opts...)

	logging.Info().
		Bool("enabled", cfg.Enabled).
		Str("base_url", cfg.BaseURL).
		Str("cache", cfg.Cache.Backend).
		Msg("Geocoder configured")
	return parts
}

// buildOracle creates the provider client and wraps it with the breaker.
func buildOracle(ctx context.Context, cfg config.OracleConfig) (*oracle.Oracle, error) {
	provider, err := oracle.NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logging.Info().
		Str("provider", provider.Name()).
		Str("model", cfg.Model).
		Dur("timeout", cfg.Timeout).
		Int("max_attempts", cfg.MaxAttempts).
		Msg("Ranking oracle configured")
	return oracle.New(provider, cfg), nil
}
