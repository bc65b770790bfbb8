// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package postgres implements the store contracts against the managed
// Postgres database that backs the marketplace.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/metrics"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store"
)

const backendName = "postgres"

// Schema is the subset of the marketplace schema this service reads.
const Schema = `
CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	name TEXT,
	event_date DATE NOT NULL,
	location TEXT,
	budget DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS event_categories (
	event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	category TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (event_id, category)
);
CREATE TABLE IF NOT EXISTS vendors (
	id TEXT PRIMARY KEY,
	business_name TEXT NOT NULL,
	category TEXT NOT NULL,
	description TEXT,
	service_areas TEXT[],
	price_min DOUBLE PRECISION,
	price_max DOUBLE PRECISION,
	profile_photo_url TEXT,
	latitude DOUBLE PRECISION,
	longitude DOUBLE PRECISION,
	is_published BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_vendors_category ON vendors (category, is_published);
CREATE TABLE IF NOT EXISTS vendor_availability (
	vendor_id TEXT NOT NULL,
	blocked_date DATE NOT NULL,
	note TEXT,
	PRIMARY KEY (vendor_id, blocked_date)
);`

// DB is a pgxpool-backed store.
type DB struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

var _ store.Store = (*DB)(nil)

// New creates and verifies a connection pool.
func New(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	logging.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Int32("max_conns", poolCfg.MaxConns).
		Msg("Postgres store ready")

	return &DB{pool: pool, queryTimeout: cfg.QueryTimeout}, nil
}

// ApplySchema creates the tables when they do not exist.
func (db *DB) ApplySchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Pool exposes the pool for fixtures.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Ping implements store.Store.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close implements store.Store.
func (db *DB) Close() error {
	db.pool.Close()
	return nil
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// GetEvent implements store.EventStore.
func (db *DB) GetEvent(ctx context.Context, id string) (ev *models.Event, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreQuery(backendName, "get_event", time.Since(start), err) }()

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	ev = &models.Event{ID: id}
	var (
		eventDate time.Time
		name      *string
		location  *string
	)
	err = db.pool.QueryRow(ctx,
		`SELECT name, event_date, location, budget FROM events WHERE id = $1`, id,
	).Scan(&name, &eventDate, &location, &ev.Budget)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("getEvent query: %w", err)
	}
	ev.EventDate = models.CalendarDate(eventDate)
	if name != nil {
		ev.Name = *name
	}
	if location != nil {
		ev.Location = *location
	}

	rows, err := db.pool.Query(ctx,
		`SELECT category FROM event_categories WHERE event_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("getEvent categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("getEvent categories scan: %w", err)
		}
		c, _ := models.ParseCategory(raw)
		ev.Categories = append(ev.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("getEvent categories: %w", err)
	}
	return ev, nil
}

// QueryVendors implements store.VendorStore.
func (db *DB) QueryVendors(ctx context.Context, q store.VendorQuery) (out []models.VendorCandidate, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreQuery(backendName, "query_vendors", time.Since(start), err) }()

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	query, args := buildVendorQuery(q)
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("queryVendors %s: %w", q.Category, err)
	}
	defer rows.Close()

	out = make([]models.VendorCandidate, 0)
	for rows.Next() {
		var (
			v                  models.VendorCandidate
			category           string
			description, photo *string
		)
		dest := []any{&v.ID, &v.BusinessName, &category, &description, &v.ServiceAreas,
			&v.PriceMin, &v.PriceMax, &photo, &v.CreatedAt}
		if q.Near != nil {
			dest = append(dest, &v.DistanceMiles)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("queryVendors scan: %w", err)
		}
		v.Category = models.Category(category)
		if description != nil {
			v.Description = *description
		}
		if photo != nil {
			v.ProfilePhotoURL = *photo
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("queryVendors %s: %w", q.Category, err)
	}
	return out, nil
}

const vendorColumns = `id, business_name, category, description, service_areas,
	price_min, price_max, profile_photo_url, created_at`

func buildVendorQuery(q store.VendorQuery) (string, []any) {
	args := []any{string(q.Category)}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where := []string{"category = $1"}
	if q.PublishedOnly {
		where = append(where, "is_published")
	}
	if q.PriceCeiling != nil {
		where = append(where, "(price_min IS NULL OR price_min <= "+next(*q.PriceCeiling)+")")
	}

	var sb strings.Builder
	if q.Near == nil {
		sb.WriteString("SELECT " + vendorColumns + " FROM vendors WHERE " + strings.Join(where, " AND "))
	} else {
		where = append(where, "latitude IS NOT NULL", "longitude IS NOT NULL")
		lat := next(q.Near.Lat)
		lng := next(q.Near.Lng)
		distance := store.HaversineSQL("latitude", "longitude", lat, lat, lng)
		sb.WriteString("SELECT " + vendorColumns + ", distance_miles FROM (SELECT *, " + distance +
			" AS distance_miles FROM vendors WHERE " + strings.Join(where, " AND ") + ") AS v")
		sb.WriteString(" WHERE distance_miles <= " + next(q.Near.RadiusMiles))
	}
	sb.WriteString(" ORDER BY created_at, id")
	if q.Limit > 0 {
		sb.WriteString(" LIMIT " + next(q.Limit))
	}
	return sb.String(), args
}

// BlockedVendorIDs implements store.AvailabilityStore.
func (db *DB) BlockedVendorIDs(ctx context.Context, vendorIDs []string, date time.Time) (out []string, err error) {
	if len(vendorIDs) == 0 {
		return nil, nil
	}
	start := time.Now()
	defer func() { metrics.ObserveStoreQuery(backendName, "blocked_vendors", time.Since(start), err) }()

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx,
		`SELECT DISTINCT vendor_id FROM vendor_availability
		 WHERE blocked_date = $1::date AND vendor_id = ANY($2)`,
		date.Format(models.DateLayout), vendorIDs)
	if err != nil {
		return nil, fmt.Errorf("blockedVendorIDs query: %w", err)
	}
	out, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("blockedVendorIDs scan: %w", err)
	}
	return out, nil
}
