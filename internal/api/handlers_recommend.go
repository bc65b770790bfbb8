// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/validation"
)

// GetRecommendations handles GET /api/v1/events/{eventID}/recommendations
//
// @Summary Vendor recommendations for an event
// @Description Returns up to three ranked vendors, each with an explanation, for every category the event needs. Vendors are filtered by category, publication, budget, a 50 mile radius and date availability before ranking.
// @Description An event with no eligible vendors returns 200 with empty lists and no_candidates=true.
// @Tags Recommendations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} models.APIResponse{data=models.RecommendationResult} "Recommendations by category"
// @Failure 400 {object} models.APIResponse "Invalid event ID"
// @Failure 401 {object} models.APIResponse "Missing or invalid token"
// @Failure 404 {object} models.APIResponse "Event not found"
// @Failure 502 {object} models.APIResponse "Ranking service returned a malformed response"
// @Failure 503 {object} models.APIResponse "Ranking service or vendor data unavailable"
// @Router /events/{eventID}/recommendations [get]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	eventID := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "eventID")))
	if verr := validation.ValidateVar(eventID, "event_id", "required,uuid"); verr != nil {
		rw.Fail(verr)
		return
	}

	result, err := h.recommender.GetRecommendations(r.Context(), eventID)
	if err != nil {
		rw.Fail(err)
		return
	}
	rw.Success(result)
}
