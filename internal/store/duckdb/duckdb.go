// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package duckdb implements the store contracts on an embedded DuckDB
// database. It is the default backend for local development and demos.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // register "duckdb" driver

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store"
)

const backendName = "duckdb"

// DB wraps the DuckDB connection.
type DB struct {
	conn             *sql.DB
	cfg              config.DatabaseConfig
	spatialAvailable bool
}

var _ store.Store = (*DB)(nil)

// New opens (or creates) the database, applies the schema and loads the
// spatial extension when it is installed. Without spatial, radius queries
// fall back to a haversine expression.
func New(cfg config.DatabaseConfig) (*DB, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	if cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	path := cfg.Path
	if path == ":memory:" {
		path = ""
	}
	connStr := fmt.Sprintf("%s?threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		path, threads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.createSchema(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	db.spatialAvailable = db.loadSpatial(ctx)

	if cfg.SeedDemoData {
		if err := db.SeedDemoData(ctx); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	logging.Info().
		Str("path", cfg.Path).
		Int("threads", threads).
		Bool("spatial", db.spatialAvailable).
		Msg("DuckDB store ready")

	return db, nil
}

// loadSpatial tries LOAD spatial, then INSTALL+LOAD. Failure is not fatal.
func (db *DB) loadSpatial(ctx context.Context) bool {
	if _, err := db.conn.ExecContext(ctx, "LOAD spatial;"); err == nil {
		return true
	}
	installCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := db.conn.ExecContext(installCtx, "INSTALL spatial;"); err != nil {
		logging.Warn().Err(err).Msg("DuckDB spatial extension unavailable, using haversine distance")
		return false
	}
	if _, err := db.conn.ExecContext(installCtx, "LOAD spatial;"); err != nil {
		logging.Warn().Err(err).Msg("DuckDB spatial extension failed to load, using haversine distance")
		return false
	}
	return true
}

// IsSpatialAvailable reports whether ST_* functions are used for radius queries.
func (db *DB) IsSpatialAvailable() bool {
	return db.spatialAvailable
}

// SetSpatialAvailableForTesting forces the distance implementation.
func (db *DB) SetSpatialAvailableForTesting(available bool) {
	db.spatialAvailable = available
}

// Conn exposes the underlying handle for seeding in tests.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping implements store.Store.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Close checkpoints file-backed databases and closes the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if db.cfg.Path != ":memory:" {
		if _, err := db.conn.Exec("CHECKPOINT;"); err != nil {
			logging.Warn().Err(err).Msg("DuckDB checkpoint before close failed")
		}
	}
	return db.conn.Close()
}

// withTimeout bounds a query by the configured timeout unless the caller's
// deadline is sooner.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.cfg.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.cfg.QueryTimeout)
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
