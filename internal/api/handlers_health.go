// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// HealthLive handles liveness probe requests.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is serving HTTP.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(models.HealthStatus{
		Status:    "alive",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		CheckedAt: time.Now().UTC(),
	})
}

// HealthReady handles readiness probe requests
// Returns 200 OK only if the vendor store answers.
//
// @Summary Readiness probe
// @Description Returns 200 when the vendor store is reachable, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Failure 503 {object} models.APIResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.readyCheck)
	defer cancel()

	if h.store == nil {
		rw.Error(http.StatusServiceUnavailable, &models.APIError{
			Code:      ErrCodeServiceUnavailable,
			Message:   "Store not configured",
			Retryable: true,
		})
		return
	}
	if err := h.store.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		rw.Error(http.StatusServiceUnavailable, &models.APIError{
			Code:      ErrCodeServiceUnavailable,
			Message:   "Vendor store unreachable",
			Retryable: true,
			Details:   map[string]interface{}{"store": "down"},
		})
		return
	}

	rw.Success(models.HealthStatus{
		Status:    "ready",
		Version:   h.version,
		Checks:    map[string]string{"store": "ok"},
		CheckedAt: time.Now().UTC(),
	})
}

// NotFound answers unmatched routes with the JSON envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Error(http.StatusNotFound, &models.APIError{
		Code:    ErrCodeNotFound,
		Message: "Route not found",
	})
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, &models.APIError{
		Code:    ErrCodeMethodNotAllowed,
		Message: "Method not allowed",
	})
}
