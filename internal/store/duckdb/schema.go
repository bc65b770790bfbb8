// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package duckdb

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id VARCHAR PRIMARY KEY,
		name VARCHAR,
		event_date DATE NOT NULL,
		location VARCHAR,
		budget DOUBLE,
		created_at TIMESTAMP DEFAULT current_timestamp
	)`,
	`CREATE TABLE IF NOT EXISTS event_categories (
		event_id VARCHAR NOT NULL,
		category VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (event_id, category)
	)`,
	`CREATE TABLE IF NOT EXISTS vendors (
		id VARCHAR PRIMARY KEY,
		business_name VARCHAR NOT NULL,
		category VARCHAR NOT NULL,
		description VARCHAR,
		service_areas VARCHAR[],
		price_min DOUBLE,
		price_max DOUBLE,
		profile_photo_url VARCHAR,
		latitude DOUBLE,
		longitude DOUBLE,
		is_published BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vendors_category ON vendors (category, is_published)`,
	`CREATE TABLE IF NOT EXISTS vendor_availability (
		vendor_id VARCHAR NOT NULL,
		blocked_date DATE NOT NULL,
		note VARCHAR,
		PRIMARY KEY (vendor_id, blocked_date)
	)`,
}

func (db *DB) createSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
