// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package eligibility

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store/memstore"
)

var (
	eventDate = time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)
	created   = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	edison    = &models.GeoPoint{Lat: 40.5187, Lng: -74.4121, DisplayName: "Edison, NJ"}
)

func fptr(f float64) *float64 { return &f }

func vendor(id string, cat models.Category, priceMin *float64, n int) memstore.Vendor {
	return memstore.Vendor{
		VendorCandidate: models.VendorCandidate{
			ID:           id,
			BusinessName: "Vendor " + id,
			Category:     cat,
			PriceMin:     priceMin,
			CreatedAt:    created.Add(time.Duration(n) * time.Minute),
		},
		Lat:       fptr(40.52),
		Lng:       fptr(-74.41),
		Published: true,
	}
}

func ids(vs []models.VendorCandidate) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func sameIDs(got []models.VendorCandidate, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].ID != want[i] {
			return false
		}
	}
	return true
}

func newFilter(s *memstore.Store) *Filter {
	return New(s, s, Config{})
}

func TestFilterCandidates_Budget(t *testing.T) {
	s := memstore.New()
	s.AddVendor(vendor("p100", models.CategoryPhotography, fptr(100), 0))
	s.AddVendor(vendor("p600", models.CategoryPhotography, fptr(600), 1))
	s.AddVendor(vendor("p2000", models.CategoryPhotography, fptr(2000), 2))
	s.AddVendor(vendor("pnull", models.CategoryPhotography, nil, 3))

	tests := []struct {
		name   string
		budget *float64
		want   []string
	}{
		{"budget 500", fptr(500), []string{"p100", "pnull"}},
		{"budget equal to price_min", fptr(600), []string{"p100", "p600", "pnull"}},
		{"no budget", nil, []string{"p100", "p600", "p2000", "pnull"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &models.Event{ID: "e", EventDate: eventDate, Budget: tt.budget}
			got, err := newFilter(s).FilterCandidates(context.Background(), models.CategoryPhotography, ev, nil)
			if err != nil {
				t.Fatalf("FilterCandidates() error = %v", err)
			}
			if !sameIDs(got, tt.want...) {
				t.Errorf("FilterCandidates() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilterCandidates_PublishedAndCategory(t *testing.T) {
	s := memstore.New()
	s.AddVendor(vendor("venue", models.CategoryVenue, nil, 0))
	draft := vendor("draft", models.CategoryCatering, nil, 1)
	draft.Published = false
	s.AddVendor(draft)
	s.AddVendor(vendor("cater", models.CategoryCatering, nil, 2))

	ev := &models.Event{ID: "e", EventDate: eventDate}
	got, err := newFilter(s).FilterCandidates(context.Background(), models.CategoryCatering, ev, nil)
	if err != nil {
		t.Fatalf("FilterCandidates() error = %v", err)
	}
	if !sameIDs(got, "cater") {
		t.Errorf("FilterCandidates() = %v, want [cater]", ids(got))
	}
}

func TestFilterCandidates_Radius(t *testing.T) {
	s := memstore.New()
	near := vendor("near", models.CategoryVenue, nil, 0)
	far := vendor("far", models.CategoryVenue, nil, 1)
	far.Lat, far.Lng = fptr(34.0522), fptr(-118.2437)
	unplaced := vendor("unplaced", models.CategoryVenue, nil, 2)
	unplaced.Lat, unplaced.Lng = nil, nil
	s.AddVendor(near)
	s.AddVendor(far)
	s.AddVendor(unplaced)

	ev := &models.Event{ID: "e", EventDate: eventDate, Location: "Edison, NJ"}
	f := newFilter(s)

	got, err := f.FilterCandidates(context.Background(), models.CategoryVenue, ev, edison)
	if err != nil {
		t.Fatalf("FilterCandidates() error = %v", err)
	}
	if !sameIDs(got, "near") {
		t.Errorf("with coordinates = %v, want [near]", ids(got))
	}
	if q := s.VendorQueries()[0]; q.Near == nil || q.Near.RadiusMiles != DefaultRadiusMiles {
		t.Errorf("radius query = %+v, want %v miles", q.Near, DefaultRadiusMiles)
	}

	got, err = f.FilterCandidates(context.Background(), models.CategoryVenue, ev, nil)
	if err != nil {
		t.Fatalf("FilterCandidates() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("without coordinates = %v, want all three vendors", ids(got))
	}
}

func TestFilterCandidates_CapIsDeterministic(t *testing.T) {
	s := memstore.New()
	for i := 14; i >= 0; i-- {
		s.AddVendor(vendor(fmt.Sprintf("v%02d", i), models.CategoryOrchestra, nil, i))
	}

	ev := &models.Event{ID: "e", EventDate: eventDate}
	f := newFilter(s)

	first, err := f.FilterCandidates(context.Background(), models.CategoryOrchestra, ev, nil)
	if err != nil {
		t.Fatalf("FilterCandidates() error = %v", err)
	}
	second, _ := f.FilterCandidates(context.Background(), models.CategoryOrchestra, ev, nil)

	if len(first) != DefaultMaxCandidates {
		t.Fatalf("len = %d, want %d", len(first), DefaultMaxCandidates)
	}
	if first[0].ID != "v00" || first[9].ID != "v09" {
		t.Errorf("cap kept %v, want the ten oldest", ids(first))
	}
	if fmt.Sprint(ids(first)) != fmt.Sprint(ids(second)) {
		t.Errorf("repeated calls differ: %v vs %v", ids(first), ids(second))
	}
}

func TestFilterCandidates_ExcludesBlockedOnEventDateOnly(t *testing.T) {
	s := memstore.New()
	s.AddVendor(vendor("blocked", models.CategoryNattuvanar, nil, 0))
	s.AddVendor(vendor("dayafter", models.CategoryNattuvanar, nil, 1))
	s.AddVendor(vendor("free", models.CategoryNattuvanar, nil, 2))
	s.Block("blocked", eventDate.Add(15*time.Hour))
	s.Block("dayafter", eventDate.AddDate(0, 0, 1))

	ev := &models.Event{ID: "e", EventDate: eventDate}
	got, err := newFilter(s).FilterCandidates(context.Background(), models.CategoryNattuvanar, ev, nil)
	if err != nil {
		t.Fatalf("FilterCandidates() error = %v", err)
	}
	if !sameIDs(got, "dayafter", "free") {
		t.Errorf("FilterCandidates() = %v, want [dayafter free]", ids(got))
	}
}

func TestFilterCandidates_InvalidCategory(t *testing.T) {
	s := memstore.New()
	ev := &models.Event{ID: "e", EventDate: eventDate}

	got, err := newFilter(s).FilterCandidates(context.Background(), models.Category("fireworks"), ev, nil)
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("FilterCandidates(invalid) = %v, %v; want empty, nil", got, err)
	}
	if n := len(s.VendorQueries()); n != 0 {
		t.Errorf("store queried %d times, want 0", n)
	}
}

func TestFilterCandidates_NoCandidatesSkipsAvailability(t *testing.T) {
	s := memstore.New()
	ev := &models.Event{ID: "e", EventDate: eventDate}

	got, err := newFilter(s).FilterCandidates(context.Background(), models.CategoryCostume, ev, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("FilterCandidates() = %v, %v", got, err)
	}
	if s.AvailabilityQueries() != 0 {
		t.Error("availability should not be queried for an empty candidate set")
	}
}

func TestFilterCandidates_StoreErrors(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*memstore.Store)
		wantStage Stage
	}{
		{"vendor query", func(s *memstore.Store) { s.FailCategories[models.CategoryVenue] = true }, StageVendors},
		{"availability query", func(s *memstore.Store) { s.FailAvailability = true }, StageAvailability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memstore.New()
			s.AddVendor(vendor("v", models.CategoryVenue, nil, 0))
			tt.setup(s)

			ev := &models.Event{ID: "e", EventDate: eventDate}
			_, err := newFilter(s).FilterCandidates(context.Background(), models.CategoryVenue, ev, nil)

			var se *StoreError
			if !errors.As(err, &se) {
				t.Fatalf("error = %v, want *StoreError", err)
			}
			if se.Stage != tt.wantStage || se.Category != models.CategoryVenue {
				t.Errorf("StoreError = %+v", se)
			}
			if !errors.Is(err, memstore.ErrInjected) {
				t.Error("StoreError should unwrap to the store error")
			}
		})
	}
}

func TestFilterCandidates_Canceled(t *testing.T) {
	s := memstore.New()
	s.AddVendor(vendor("v", models.CategoryVenue, nil, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ev := &models.Event{ID: "e", EventDate: eventDate}
	_, err := newFilter(s).FilterCandidates(ctx, models.CategoryVenue, ev, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	var se *StoreError
	if errors.As(err, &se) {
		t.Error("cancellation must not be reported as a store failure")
	}
}
