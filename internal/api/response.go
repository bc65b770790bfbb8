// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// ResponseWriter provides methods for writing standardized API responses.
type ResponseWriter struct {
	w         http.ResponseWriter
	r         *http.Request
	startTime time.Time
}

// NewResponseWriter creates a new response writer.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{
		w:         w,
		r:         r,
		startTime: time.Now(),
	}
}

// Success writes a 200 response with data.
func (rw *ResponseWriter) Success(data interface{}) {
	rw.write(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    data,
		Meta:    rw.meta(),
	})
}

// Error writes an error response.
func (rw *ResponseWriter) Error(statusCode int, apiErr *models.APIError) {
	rw.write(statusCode, models.APIResponse{
		Success: false,
		Error:   apiErr,
		Meta:    rw.meta(),
	})
}

// Fail maps err onto a status and code and writes it.
func (rw *ResponseWriter) Fail(err error) {
	status, apiErr := mapError(err)
	if status >= http.StatusInternalServerError {
		logging.Ctx(rw.r.Context()).Error().Err(err).Int("status", status).Str("code", apiErr.Code).Msg("Request failed")
	} else {
		logging.Ctx(rw.r.Context()).Debug().Err(err).Int("status", status).Str("code", apiErr.Code).Msg("Request rejected")
	}
	rw.Error(status, apiErr)
}

func (rw *ResponseWriter) meta() *models.APIMeta {
	return &models.APIMeta{
		Timestamp:  time.Now().UTC(),
		DurationMs: time.Since(rw.startTime).Milliseconds(),
		RequestID:  logging.RequestIDFromContext(rw.r.Context()),
	}
}

// write writes JSON response with proper headers.
func (rw *ResponseWriter) write(statusCode int, body models.APIResponse) {
	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(statusCode)

	if err := json.NewEncoder(rw.w).Encode(body); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}
