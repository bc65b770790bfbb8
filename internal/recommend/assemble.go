// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package recommend

import (
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// Assemble joins the oracle's verdicts onto the category's candidates.
// Output follows the oracle's order. Ids that are not candidates are
// dropped silently, as are repeats, and the list is cut to
// models.MaxRecommendationsPerCategory.
func Assemble(category models.Category, candidates []models.VendorCandidate, ranked []models.RankedRecommendation) models.CategoryRecommendations {
	out := make(models.CategoryRecommendations, 0, models.MaxRecommendationsPerCategory)
	if len(candidates) == 0 {
		return out
	}

	byID := make(map[string]models.VendorCandidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	used := make(map[string]struct{}, len(ranked))
	for _, r := range ranked {
		if len(out) == models.MaxRecommendationsPerCategory {
			break
		}
		c, ok := byID[r.VendorID]
		if !ok {
			logging.Debug().
				Str("category", string(category)).
				Str("vendor_id", r.VendorID).
				Msg("Dropping ranked vendor that was not a candidate")
			continue
		}
		if _, dup := used[r.VendorID]; dup {
			continue
		}
		used[r.VendorID] = struct{}{}
		out = append(out, models.RecommendedVendor{VendorCandidate: c, Explanation: r.Explanation})
	}
	return out
}
