// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package eligibility applies the hard constraints a vendor must meet before
// it can be ranked: published in the category, within budget, within the
// search radius, capped in count, and not blocked on the event date.
package eligibility

import (
	"context"
	"fmt"
	"sort"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store"
)

// Defaults applied when Config fields are zero.
const (
	DefaultRadiusMiles   = 50.0
	DefaultMaxCandidates = 10
)

// Config bounds the candidate set.
type Config struct {
	RadiusMiles   float64
	MaxCandidates int
}

// Stage identifies which store read failed.
type Stage string

const (
	StageVendors      Stage = "vendors"
	StageAvailability Stage = "availability"
)

// StoreError reports a failed store read for one category.
type StoreError struct {
	Category models.Category
	Stage    Stage
	Err      error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s query failed: %v", e.Category, e.Stage, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Filter selects eligible candidates per category.
type Filter struct {
	vendors      store.VendorStore
	availability store.AvailabilityStore
	cfg          Config
}

// New creates a Filter.
func New(vendors store.VendorStore, availability store.AvailabilityStore, cfg Config) *Filter {
	if cfg.RadiusMiles <= 0 {
		cfg.RadiusMiles = DefaultRadiusMiles
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = DefaultMaxCandidates
	}
	return &Filter{vendors: vendors, availability: availability, cfg: cfg}
}

// FilterCandidates returns the eligible vendors for category, in creation
// order. geo may be nil, in which case no radius restriction applies.
//
// The cap is applied before blocked vendors are removed, so a category can
// return fewer than MaxCandidates even when more unblocked vendors exist.
func (f *Filter) FilterCandidates(ctx context.Context, category models.Category, event *models.Event, geo *models.GeoPoint) ([]models.VendorCandidate, error) {
	if !category.Valid() {
		logging.Ctx(ctx).Debug().Str("category", string(category)).Msg("Skipping unknown category")
		return []models.VendorCandidate{}, nil
	}

	q := store.VendorQuery{
		Category:      category,
		PublishedOnly: true,
		PriceCeiling:  event.Budget,
		Limit:         f.cfg.MaxCandidates,
	}
	if geo != nil {
		q.Near = &store.GeoRadius{Lat: geo.Lat, Lng: geo.Lng, RadiusMiles: f.cfg.RadiusMiles}
	}

	candidates, err := f.vendors.QueryVendors(ctx, q)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &StoreError{Category: category, Stage: StageVendors, Err: err}
	}

	candidates = capCandidates(candidates, f.cfg.MaxCandidates)
	if len(candidates) == 0 {
		return []models.VendorCandidate{}, nil
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}
	blocked, err := f.availability.BlockedVendorIDs(ctx, ids, event.EventDate)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &StoreError{Category: category, Stage: StageAvailability, Err: err}
	}

	return removeBlocked(candidates, blocked), nil
}

// capCandidates orders by creation time then id and keeps the first limit.
func capCandidates(in []models.VendorCandidate, limit int) []models.VendorCandidate {
	out := append([]models.VendorCandidate(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func removeBlocked(in []models.VendorCandidate, blocked []string) []models.VendorCandidate {
	if len(blocked) == 0 {
		return in
	}
	skip := make(map[string]struct{}, len(blocked))
	for _, id := range blocked {
		skip[id] = struct{}{}
	}
	out := make([]models.VendorCandidate, 0, len(in))
	for _, c := range in {
		if _, ok := skip[c.ID]; !ok {
			out = append(out, c)
		}
	}
	return out
}
