// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package models defines the data structures shared by the recommendation
pipeline and the HTTP API.

Domain types:
  - Event: planner's occasion (date, optional location, optional budget, needed categories)
  - Category: fixed set of vendor service types
  - VendorCandidate / AvailabilityBlock: rows read from the vendor stores
  - CandidateSummary: the projection sent to the ranking oracle
  - RankedRecommendation / RecommendedVendor / CategoryRecommendations: ranking output
  - RecommendationResult: what a caller receives

All values are built fresh per request and never written back.
*/
package models
