// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package models

import "strings"

// Category identifies one vendor service type. The set is fixed; vendors
// are registered under exactly one category.
type Category string

const (
	CategoryVenue           Category = "venue"
	CategoryCatering        Category = "catering"
	CategoryPhotography     Category = "photography"
	CategoryVideography     Category = "videography"
	CategoryMakeupArtist    Category = "makeup_artist"
	CategoryNattuvanar      Category = "nattuvanar"
	CategoryOrchestra       Category = "orchestra"
	CategoryStageDecoration Category = "stage_decoration"
	CategoryCostume         Category = "costume"
	CategoryInvitations     Category = "invitations"
	CategoryReturnGifts     Category = "return_gifts"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryVenue,
	CategoryCatering,
	CategoryPhotography,
	CategoryVideography,
	CategoryMakeupArtist,
	CategoryNattuvanar,
	CategoryOrchestra,
	CategoryStageDecoration,
	CategoryCostume,
	CategoryInvitations,
	CategoryReturnGifts,
}

var validCategories = func() map[Category]struct{} {
	m := make(map[Category]struct{}, len(AllCategories))
	for _, c := range AllCategories {
		m[c] = struct{}{}
	}
	return m
}()

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := validCategories[c]
	return ok
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ParseCategory normalizes free-form input ("Stage Decoration", " VENUE ")
// into a Category. The second return value is false when the input does not
// name a known category; the normalized value is still returned.
func ParseCategory(s string) (Category, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "_")
	norm = strings.ReplaceAll(norm, "-", "_")
	c := Category(norm)
	return c, c.Valid()
}

// UniqueCategories drops repeated categories, keeping first occurrences in order.
func UniqueCategories(in []Category) []Category {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[Category]struct{}, len(in))
	out := make([]Category, 0, len(in))
	for _, c := range in {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
