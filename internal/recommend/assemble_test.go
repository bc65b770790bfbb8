// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package recommend

import (
	"testing"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

func candidates(ids ...string) []models.VendorCandidate {
	out := make([]models.VendorCandidate, len(ids))
	for i, id := range ids {
		out[i] = models.VendorCandidate{ID: id, BusinessName: "Vendor " + id}
	}
	return out
}

func ranked(ids ...string) []models.RankedRecommendation {
	out := make([]models.RankedRecommendation, len(ids))
	for i, id := range ids {
		out[i] = models.RankedRecommendation{VendorID: id, Explanation: "fits " + id}
	}
	return out
}

func recIDs(recs models.CategoryRecommendations) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		name       string
		candidates []models.VendorCandidate
		ranked     []models.RankedRecommendation
		want       []string
	}{
		{"oracle order kept", candidates("a", "b", "c"), ranked("c", "a", "b"), []string{"c", "a", "b"}},
		{"hallucinated ids dropped", candidates("a", "b"), ranked("ghost", "b", "phantom", "a"), []string{"b", "a"}},
		{"duplicates dropped", candidates("a", "b"), ranked("a", "a", "b"), []string{"a", "b"}},
		{"truncated to three", candidates("a", "b", "c", "d", "e"), ranked("e", "d", "c", "b", "a"), []string{"e", "d", "c"}},
		{"truncation after drops", candidates("a", "b", "c", "d"), ranked("x", "d", "y", "c", "b", "a"), []string{"d", "c", "b"}},
		{"no candidates", nil, ranked("a"), []string{}},
		{"nothing ranked", candidates("a"), nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(models.CategoryVenue, tt.candidates, tt.ranked)
			ids := recIDs(got)
			if len(ids) != len(tt.want) {
				t.Fatalf("Assemble() = %v, want %v", ids, tt.want)
			}
			for i := range ids {
				if ids[i] != tt.want[i] {
					t.Errorf("Assemble() = %v, want %v", ids, tt.want)
					break
				}
			}
			if len(got) > len(tt.candidates) {
				t.Errorf("len = %d exceeds candidate count %d", len(got), len(tt.candidates))
			}
		})
	}
}

func TestAssemble_Enriches(t *testing.T) {
	c := candidates("a")
	c[0].PriceMin = fptr(900)
	got := Assemble(models.CategoryCatering, c, ranked("a"))
	if len(got) != 1 || got[0].Explanation != "fits a" || got[0].BusinessName != "Vendor a" || *got[0].PriceMin != 900 {
		t.Errorf("Assemble() = %+v", got)
	}
}
