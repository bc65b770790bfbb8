// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package models

import "time"

// VendorCandidate is a published vendor that matched the deterministic
// eligibility criteria and has not been ranked yet.
type VendorCandidate struct {
	ID              string    `json:"id"`
	BusinessName    string    `json:"business_name"`
	Category        Category  `json:"category"`
	Description     string    `json:"description,omitempty"`
	ServiceAreas    []string  `json:"service_areas,omitempty"`
	PriceMin        *float64  `json:"price_min,omitempty"`
	PriceMax        *float64  `json:"price_max,omitempty"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	CreatedAt       time.Time `json:"-"`

	// DistanceMiles is set only when the query was geo-restricted.
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
}

// AvailabilityBlock marks a single calendar date on which a vendor cannot
// be booked.
type AvailabilityBlock struct {
	VendorID    string    `json:"vendor_id"`
	BlockedDate time.Time `json:"blocked_date"`
	Note        string    `json:"note,omitempty"`
}

// CandidateSummary is the reduced projection of a candidate sent to the
// ranking oracle.
type CandidateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PriceRange  string `json:"price_range"`
}
