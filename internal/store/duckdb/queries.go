// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/metrics"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store"
)

const vendorColumns = `id, business_name, category, description, service_areas,
	price_min, price_max, profile_photo_url, created_at`

// GetEvent implements store.EventStore.
func (db *DB) GetEvent(ctx context.Context, id string) (ev *models.Event, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreQuery(backendName, "get_event", time.Since(start), err) }()

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	var (
		name, location sql.NullString
		budget         sql.NullFloat64
		eventDate      time.Time
	)
	row := db.conn.QueryRowContext(ctx,
		`SELECT name, event_date, location, budget FROM events WHERE id = ?`, id)
	if err := row.Scan(&name, &eventDate, &location, &budget); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read event %s: %w", id, err)
	}

	ev = &models.Event{
		ID:        id,
		Name:      name.String,
		EventDate: models.CalendarDate(eventDate),
		Location:  location.String,
	}
	if budget.Valid {
		b := budget.Float64
		ev.Budget = &b
	}

	categories, err := queryAndScan(ctx, db.conn,
		`SELECT category FROM event_categories WHERE event_id = ? ORDER BY position`,
		[]interface{}{id},
		func(rows *sql.Rows) (models.Category, error) {
			var raw string
			err := rows.Scan(&raw)
			c, _ := models.ParseCategory(raw)
			return c, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to read categories for event %s: %w", id, err)
	}
	ev.Categories = categories
	return ev, nil
}

// QueryVendors implements store.VendorStore.
func (db *DB) QueryVendors(ctx context.Context, q store.VendorQuery) (out []models.VendorCandidate, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreQuery(backendName, "query_vendors", time.Since(start), err) }()

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	query, args := db.buildVendorQuery(q)
	out, err = queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.VendorCandidate, error) {
		return scanVendor(rows, q.Near != nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s vendors: %w", q.Category, err)
	}
	return out, nil
}

func (db *DB) buildVendorQuery(q store.VendorQuery) (string, []interface{}) {
	where := []string{"category = ?"}
	args := []interface{}{string(q.Category)}

	if q.PublishedOnly {
		where = append(where, "is_published")
	}
	if q.PriceCeiling != nil {
		where = append(where, "(price_min IS NULL OR price_min <= ?)")
		args = append(args, *q.PriceCeiling)
	}

	var sb strings.Builder
	if q.Near == nil {
		sb.WriteString("SELECT " + vendorColumns + " FROM vendors WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	} else {
		where = append(where, "latitude IS NOT NULL", "longitude IS NOT NULL")
		var distance string
		var distArgs []interface{}
		if db.spatialAvailable {
			// ST_Distance_Sphere expects [latitude, longitude] axis order and returns meters.
			distance = fmt.Sprintf("(ST_Distance_Sphere(ST_Point(latitude, longitude), ST_Point(?, ?)) / %g)", store.MetersPerMile)
			distArgs = []interface{}{q.Near.Lat, q.Near.Lng}
		} else {
			distance = store.HaversineSQL("latitude", "longitude", "?", "?", "?")
			distArgs = []interface{}{q.Near.Lat, q.Near.Lat, q.Near.Lng}
		}
		sb.WriteString("SELECT " + vendorColumns + ", distance_miles FROM (SELECT *, ")
		sb.WriteString(distance)
		sb.WriteString(" AS distance_miles FROM vendors WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
		sb.WriteString(") AS v WHERE distance_miles <= ?")
		args = append(distArgs, args...)
		args = append(args, q.Near.RadiusMiles)
	}

	sb.WriteString(" ORDER BY created_at, id")
	if q.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	}
	return sb.String(), args
}

func scanVendor(rows *sql.Rows, withDistance bool) (models.VendorCandidate, error) {
	var (
		v                  models.VendorCandidate
		category           string
		description, photo sql.NullString
		areas              interface{}
		priceMin, priceMax sql.NullFloat64
		distance           sql.NullFloat64
	)
	dest := []interface{}{&v.ID, &v.BusinessName, &category, &description, &areas,
		&priceMin, &priceMax, &photo, &v.CreatedAt}
	if withDistance {
		dest = append(dest, &distance)
	}
	if err := rows.Scan(dest...); err != nil {
		return v, err
	}

	v.Category = models.Category(category)
	v.Description = description.String
	v.ProfilePhotoURL = photo.String
	v.ServiceAreas = toStringSlice(areas)
	if priceMin.Valid {
		p := priceMin.Float64
		v.PriceMin = &p
	}
	if priceMax.Valid {
		p := priceMax.Float64
		v.PriceMax = &p
	}
	if distance.Valid {
		d := distance.Float64
		v.DistanceMiles = &d
	}
	return v, nil
}

// toStringSlice converts a scanned VARCHAR[] value.
func toStringSlice(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
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

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(vendorIDs)), ", ")
	args := make([]interface{}, 0, len(vendorIDs)+1)
	args = append(args, date.Format(models.DateLayout))
	for _, id := range vendorIDs {
		args = append(args, id)
	}

	query := `SELECT DISTINCT vendor_id FROM vendor_availability
		WHERE blocked_date = CAST(? AS DATE) AND vendor_id IN (` + placeholders + `)`
	out, err = queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (string, error) {
		var id string
		err := rows.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read availability: %w", err)
	}
	return out, nil
}

// queryAndScan runs a query and maps each row with scan.
func queryAndScan[T any](ctx context.Context, conn *sql.DB, query string, args []interface{}, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(rows)

	var results []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, rows.Err()
}
