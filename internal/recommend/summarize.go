// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package recommend

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/oracle"
)

// DefaultMaxDescriptionLength bounds descriptions sent to the oracle, in runes.
const DefaultMaxDescriptionLength = 500

// Price band labels.
const (
	priceOnRequest = "Contact for pricing"
	startingAt     = "Starting at "
)

// Summarize reduces a candidate to what the oracle needs to see. The
// location is the first listed service area.
func Summarize(c models.VendorCandidate, maxDescription int) models.CandidateSummary {
	location := oracle.NotSpecified
	for _, area := range c.ServiceAreas {
		if a := strings.TrimSpace(area); a != "" {
			location = a
			break
		}
	}
	return models.CandidateSummary{
		ID:          c.ID,
		Name:        c.BusinessName,
		Description: truncateRunes(strings.TrimSpace(c.Description), maxDescription),
		Location:    location,
		PriceRange:  PriceBand(c.PriceMin, c.PriceMax),
	}
}

// PriceBand renders a vendor's price range, e.g. "$2,500 - $6,000",
// "Starting at $800" or "Contact for pricing".
func PriceBand(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return dollars(*min) + " - " + dollars(*max)
	case min != nil:
		return startingAt + dollars(*min)
	default:
		return priceOnRequest
	}
}

func dollars(v float64) string {
	if v == math.Trunc(v) {
		return "$" + humanize.Comma(int64(v))
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit])) + "..."
}
