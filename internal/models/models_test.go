// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package models

import (
	"testing"
	"time"
)

func TestCategoryValid(t *testing.T) {
	t.Parallel()

	for _, c := range AllCategories {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}

	for _, c := range []Category{"", "florist", "Venue", "catering "} {
		if c.Valid() {
			t.Errorf("%q should not be valid", c)
		}
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"venue", CategoryVenue, true},
		{" Catering ", CategoryCatering, true},
		{"Stage Decoration", CategoryStageDecoration, true},
		{"makeup-artist", CategoryMakeupArtist, true},
		{"balloon artist", Category("balloon_artist"), false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}


func TestUniqueCategories(t *testing.T) {
	t.Parallel()

	in := []Category{CategoryVenue, CategoryCatering, CategoryVenue, CategoryOrchestra, CategoryCatering}
	got := UniqueCategories(in)
	want := []Category{CategoryVenue, CategoryCatering, CategoryOrchestra}

	if len(got) != len(want) {
		t.Fatalf("UniqueCategories() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueCategories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if UniqueCategories(nil) != nil {
		t.Error("UniqueCategories(nil) should be nil")
	}
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*3600+1800)
	a := time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		b    time.Time
		want bool
	}{
		{"same instant", a, true},
		{"later same day", time.Date(2026, 6, 14, 23, 59, 0, 0, time.UTC), true},
		{"next day", time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"same calendar day other zone", time.Date(2026, 6, 14, 3, 0, 0, 0, ist), true},
	}

	for _, tt := range tests {
		if got := SameDay(a, tt.b); got != tt.want {
			t.Errorf("%s: SameDay() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCalendarDate(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 6, 14, 18, 30, 0, 0, time.FixedZone("PDT", -7*3600))
	got := CalendarDate(in)
	want := time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("CalendarDate() = %v, want %v", got, want)
	}
}

func TestEventPredicates(t *testing.T) {
	t.Parallel()

	budget := 5000.0
	e := &Event{Location: "  ", Budget: &budget}
	if e.HasLocation() {
		t.Error("blank location should not count")
	}
	if !e.HasBudget() {
		t.Error("budget should be set")
	}

	e = &Event{Location: "Edison, NJ"}
	if !e.HasLocation() {
		t.Error("location should be set")
	}
	if e.HasBudget() {
		t.Error("budget should be unset")
	}
}

func TestRecommendationResultEmpty(t *testing.T) {
	t.Parallel()

	r := &RecommendationResult{Categories: map[Category]CategoryRecommendations{
		CategoryVenue: {},
	}}
	if !r.Empty() {
		t.Error("result with only empty lists should be Empty")
	}

	r.Categories[CategoryCatering] = CategoryRecommendations{{VendorCandidate: VendorCandidate{ID: "v1"}}}
	if r.Empty() {
		t.Error("result with a recommendation should not be Empty")
	}
}
