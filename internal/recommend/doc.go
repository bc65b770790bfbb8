// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package recommend produces ranked vendor shortlists for an Arangetram event.

A request runs in four stages:

 1. Load the event and geocode its location once.
 2. Filter eligible candidates for every needed category in parallel
    (see package eligibility).
 3. Summarize the candidates and send them to the ranking oracle in a
    single batched call (see package oracle).
 4. Join the oracle's picks back onto the candidate sets, keeping the
    oracle's order and discarding ids it invented.

The service is read-only. The only external effects are the geocoding
lookup and the oracle call.

# Outcomes

GetRecommendations distinguishes "nothing matched" from "something failed":

  - An event with no needed categories, or whose categories have no
    eligible vendors, yields a result with empty lists. The latter sets
    RecommendationResult.NoCandidates and never calls the oracle.
  - A failing store query for one category is logged and the category is
    listed in UnavailableCategories. When every query fails the request
    fails with ErrTotalStoreFailure.
  - A missing event fails with ErrEventNotFound.
  - Oracle failures surface as oracle.ErrUnavailable (after one retry) or
    oracle.ErrMalformedResponse (never retried).

# Usage

	svc := recommend.NewService(st, filter, geocoder, oracle, recommend.Config{})
	result, err := svc.GetRecommendations(ctx, eventID)
	if errors.Is(err, recommend.ErrEventNotFound) {
		// 404
	}
*/
package recommend
