// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package recommend

import (
	"strings"
	"testing"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

func fptr(f float64) *float64 { return &f }

func TestPriceBand(t *testing.T) {
	tests := []struct {
		name     string
		min, max *float64
		want     string
	}{
		{"range", fptr(2500), fptr(6000), "$2,500 - $6,000"},
		{"min only", fptr(800), nil, "Starting at $800"},
		{"max only", nil, fptr(900), "Contact for pricing"},
		{"neither", nil, nil, "Contact for pricing"},
		{"cents", fptr(1499.5), nil, "Starting at $1,499.5"},
		{"zero", fptr(0), fptr(0), "$0 - $0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceBand(tt.min, tt.max); got != tt.want {
				t.Errorf("PriceBand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	c := models.VendorCandidate{
		ID:           "v1",
		BusinessName: "Nritya Lens Studio",
		Description:  "  Photographed over 200 Arangetrams across New Jersey.  ",
		ServiceAreas: []string{"", "Edison, NJ", "Princeton, NJ"},
		PriceMin:     fptr(1500),
		PriceMax:     fptr(3500),
	}

	got := Summarize(c, 0)
	want := models.CandidateSummary{
		ID:          "v1",
		Name:        "Nritya Lens Studio",
		Description: "Photographed over 200 Arangetrams across New Jersey.",
		Location:    "Edison, NJ",
		PriceRange:  "$1,500 - $3,500",
	}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}

	if got := Summarize(models.VendorCandidate{ID: "v2"}, 0); got.Location != "Not specified" || got.PriceRange != "Contact for pricing" {
		t.Errorf("Summarize(bare) = %+v", got)
	}
}

func TestSummarize_TruncatesByRune(t *testing.T) {
	c := models.VendorCandidate{ID: "v1", Description: strings.Repeat("நடனம் ", 50)}
	got := Summarize(c, 20).Description
	if n := len([]rune(strings.TrimSuffix(got, "..."))); n > 20 {
		t.Errorf("description has %d runes, want at most 20", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated description %q should end with an ellipsis", got)
	}
}
