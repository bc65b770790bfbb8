// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package store defines the read-only contracts the recommendation pipeline
// consumes from the event, vendor and availability stores. Implementations
// live in the duckdb and postgres subpackages.
package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// EventStore reads event snapshots.
type EventStore interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
}

// VendorStore reads published vendor profiles.
type VendorStore interface {
	QueryVendors(ctx context.Context, q VendorQuery) ([]models.VendorCandidate, error)
}

// AvailabilityStore reads vendor blocked dates.
type AvailabilityStore interface {
	// BlockedVendorIDs returns the subset of vendorIDs holding a block on
	// the calendar date of date.
	BlockedVendorIDs(ctx context.Context, vendorIDs []string, date time.Time) ([]string, error)
}

// Store is implemented by every backend.
type Store interface {
	EventStore
	VendorStore
	AvailabilityStore
	Ping(ctx context.Context) error
	Close() error
}

// GeoRadius restricts a query to vendors within RadiusMiles of a point.
type GeoRadius struct {
	Lat         float64
	Lng         float64
	RadiusMiles float64
}

// VendorQuery selects vendors for one category. Results are ordered by
// creation time then id so that Limit picks the same rows for the same data.
type VendorQuery struct {
	Category      models.Category
	PublishedOnly bool
	PriceCeiling  *float64   // exclude vendors whose price_min exceeds this; NULL price_min passes
	Near          *GeoRadius // nil disables the radius restriction
	Limit         int
}

// EarthRadiusMiles is the mean Earth radius used for great-circle distances.
const EarthRadiusMiles = 3958.8

// MetersPerMile converts radius settings for meter-based spatial functions.
const MetersPerMile = 1609.344

// HaversineMiles returns the great-circle distance between two points.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(a)))
}

// HaversineSQL renders a great-circle distance expression in miles for
// engines without spatial support. latParam and lngParam are the driver's
// placeholders for the origin point, each referenced twice by the caller's
// argument list in the order lat, lat, lng.
func HaversineSQL(latCol, lngCol, latParam, latParam2, lngParam string) string {
	return fmt.Sprintf(
		"(2 * %g * asin(least(1, sqrt(power(sin(radians(%s - %s) / 2), 2) + cos(radians(%s)) * cos(radians(%s)) * power(sin(radians(%s - %s) / 2), 2)))))",
		EarthRadiusMiles, latCol, latParam, latParam2, latCol, lngCol, lngParam)
}
