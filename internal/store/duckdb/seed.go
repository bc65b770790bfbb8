// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package duckdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// VendorRecord is a full vendor row for inserts.
type VendorRecord struct {
	models.VendorCandidate
	Latitude  *float64
	Longitude *float64
	Published bool
}

// InsertEvent writes an event and its ordered category list.
func (db *DB) InsertEvent(ctx context.Context, ev *models.Event) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO events (id, name, event_date, location, budget) VALUES (?, ?, CAST(? AS DATE), ?, ?)`,
		ev.ID, ev.Name, ev.EventDate.Format(models.DateLayout), nullString(ev.Location), nullFloat(ev.Budget)); err != nil {
		return fmt.Errorf("failed to insert event %s: %w", ev.ID, err)
	}
	for i, c := range ev.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO event_categories (event_id, category, position) VALUES (?, ?, ?)`,
			ev.ID, string(c), i); err != nil {
			return fmt.Errorf("failed to insert category %s for event %s: %w", c, ev.ID, err)
		}
	}
	return tx.Commit()
}

// InsertVendor writes one vendor row. A zero CreatedAt uses the current time.
func (db *DB) InsertVendor(ctx context.Context, v *VendorRecord) error {
	created := v.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO vendors (id, business_name, category, description, service_areas,
			price_min, price_max, profile_photo_url, latitude, longitude, is_published, created_at)
		VALUES (?, ?, ?, ?, string_split(NULLIF(CAST(? AS VARCHAR), ''), '|'), ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.BusinessName, string(v.Category), nullString(v.Description),
		strings.Join(v.ServiceAreas, "|"), nullFloat(v.PriceMin), nullFloat(v.PriceMax), nullString(v.ProfilePhotoURL),
		nullFloat(v.Latitude), nullFloat(v.Longitude), v.Published, created)
	if err != nil {
		return fmt.Errorf("failed to insert vendor %s: %w", v.ID, err)
	}
	return nil
}

// InsertBlock records a vendor's blocked date.
func (db *DB) InsertBlock(ctx context.Context, b models.AvailabilityBlock) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO vendor_availability (vendor_id, blocked_date, note) VALUES (?, CAST(? AS DATE), ?)`,
		b.VendorID, b.BlockedDate.Format(models.DateLayout), nullString(b.Note))
	if err != nil {
		return fmt.Errorf("failed to insert block for vendor %s: %w", b.VendorID, err)
	}
	return nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

var demoNamespace = uuid.MustParse("8f4d5c1e-2a63-4b7e-9d0c-5a1f3e2b7c90")

// DemoID derives a stable identifier for a demo record.
func DemoID(name string) string {
	return uuid.NewSHA1(demoNamespace, []byte(name)).String()
}

// DemoEventID is the seeded sample event.
var DemoEventID = DemoID("event:priya-arangetram")

type demoVendor struct {
	name        string
	category    models.Category
	description string
	areas       []string
	priceMin    float64
	priceMax    float64
	lat, lng    float64
}

var demoVendors = []demoVendor{
	{"Sangeetha Hall", models.CategoryVenue, "Auditorium with 450 seats, sprung stage and green rooms.",
		[]string{"Edison, NJ", "Piscataway, NJ"}, 2500, 6000, 40.5187, -74.4121},
	{"Raga Banquets", models.CategoryVenue, "Banquet hall with attached stage suited to classical recitals.",
		[]string{"Iselin, NJ"}, 4000, 0, 40.5754, -74.3224},
	{"Annapoorna Caterers", models.CategoryCatering, "South Indian vegetarian menus for 100 to 600 guests.",
		[]string{"Edison, NJ", "New Brunswick, NJ"}, 18, 35, 40.5290, -74.3640},
	{"Kalpavriksha Kitchen", models.CategoryCatering, "Traditional banana-leaf service and sweets.",
		[]string{"Jersey City, NJ"}, 0, 0, 40.7178, -74.0431},
	{"Mudra Lens Studio", models.CategoryPhotography, "Dance photography specialists covering margams end to end.",
		[]string{"Princeton, NJ"}, 1200, 2800, 40.3573, -74.6672},
	{"Natya Frames", models.CategoryVideography, "Multi-camera recital films with edited highlight reels.",
		[]string{"Edison, NJ"}, 1800, 0, 40.5187, -74.4121},
	{"Guru Lakshmi Nattuvangam", models.CategoryNattuvanar, "Nattuvanar with twenty years of Bharatanatyam arangetrams.",
		[]string{"Central New Jersey"}, 0, 0, 40.4862, -74.4518},
	{"Shruti Ensemble", models.CategoryOrchestra, "Vocal, mridangam, violin and flute for live recitals.",
		[]string{"Edison, NJ", "Queens, NY"}, 3500, 5500, 40.5187, -74.4121},
}

// SeedDemoData inserts sample vendors and one event when the vendor table
// is empty.
func (db *DB) SeedDemoData(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM vendors`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count vendors: %w", err)
	}
	if count > 0 {
		return nil
	}

	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, d := range demoVendors {
		rec := &VendorRecord{
			VendorCandidate: models.VendorCandidate{
				ID:           DemoID("vendor:" + d.name),
				BusinessName: d.name,
				Category:     d.category,
				Description:  d.description,
				ServiceAreas: d.areas,
				CreatedAt:    base.Add(time.Duration(i) * time.Hour),
			},
			Latitude:  floatPtr(d.lat),
			Longitude: floatPtr(d.lng),
			Published: true,
		}
		if d.priceMin > 0 {
			rec.PriceMin = floatPtr(d.priceMin)
		}
		if d.priceMax > 0 {
			rec.PriceMax = floatPtr(d.priceMax)
		}
		if err := db.InsertVendor(ctx, rec); err != nil {
			return err
		}
	}

	budget := 15000.0
	ev := &models.Event{
		ID:        DemoEventID,
		Name:      "Priya's Arangetram",
		EventDate: time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC),
		Location:  "Edison, NJ",
		Budget:    &budget,
		Categories: []models.Category{
			models.CategoryVenue, models.CategoryCatering,
			models.CategoryPhotography, models.CategoryOrchestra,
		},
	}
	if err := db.InsertEvent(ctx, ev); err != nil {
		return err
	}

	// One vendor is already booked on the demo date.
	if err := db.InsertBlock(ctx, models.AvailabilityBlock{
		VendorID:    DemoID("vendor:Raga Banquets"),
		BlockedDate: ev.EventDate,
		Note:        "Wedding reception",
	}); err != nil {
		return err
	}

	logging.Info().Int("vendors", len(demoVendors)).Str("event_id", DemoEventID).Msg("Seeded demo data")
	return nil
}

func floatPtr(f float64) *float64 { return &f }
