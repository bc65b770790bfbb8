// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package models

import "time"

// RankedRecommendation is one oracle verdict. The vendor id is untrusted
// until it has been joined against the category's candidate set.
type RankedRecommendation struct {
	VendorID    string `json:"vendor_id" validate:"required"`
	Explanation string `json:"explanation" validate:"required"`
}

// RecommendedVendor is a candidate enriched with the oracle's explanation.
type RecommendedVendor struct {
	VendorCandidate
	Explanation string `json:"explanation"`
}

// CategoryRecommendations is the ranked shortlist for one category, in
// oracle order. Length never exceeds MaxRecommendationsPerCategory nor the
// number of candidates supplied for the category.
type CategoryRecommendations []RecommendedVendor

// MaxRecommendationsPerCategory bounds every CategoryRecommendations list.
const MaxRecommendationsPerCategory = 3

// RecommendationResult is the caller-facing outcome of one request.
type RecommendationResult struct {
	EventID    string                               `json:"event_id"`
	Categories map[Category]CategoryRecommendations `json:"categories"`

	// NoCandidates is an informational flag: nothing matched the event's
	// constraints, so no ranking was attempted.
	NoCandidates bool `json:"no_candidates"`

	// GeoFiltered is false when the location was absent or could not be
	// resolved and the radius restriction was skipped.
	GeoFiltered bool `json:"geo_filtered"`

	// UnavailableCategories lists categories whose store queries failed and
	// were treated as having no candidates.
	UnavailableCategories []Category `json:"unavailable_categories,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Empty reports whether no category holds any recommendation.
func (r *RecommendationResult) Empty() bool {
	for _, recs := range r.Categories {
		if len(recs) > 0 {
			return false
		}
	}
	return true
}
