// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package authz

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/auth"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/metrics"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// CodeForbidden is the API error code for denied requests.
const CodeForbidden = "FORBIDDEN"

// Middleware applies Enforcer decisions to routes. It must run after
// auth.Middleware.Authenticate.
type Middleware struct {
	enforcer *Enforcer
}

// NewMiddleware creates the middleware.
func NewMiddleware(enforcer *Enforcer) *Middleware {
	return &Middleware{enforcer: enforcer}
}

// Authorize returns chi middleware allowing the request only when the
// caller's role may perform action on object.
func (m *Middleware) Authorize(object, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleAnonymous
			if claims, ok := auth.ClaimsFromContext(r.Context()); ok && claims.Role != "" {
				role = claims.Role
			}

			start := time.Now()
			allowed, err := m.enforcer.Enforce(role, object, action)
			if err != nil {
				logging.Ctx(r.Context()).Error().Err(err).Str("role", role).Msg("Authorization error")
				writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed")
				return
			}
			metrics.RecordAuthzDecision(role, allowed, time.Since(start))

			if !allowed {
				logging.Ctx(r.Context()).Debug().
					Str("role", role).
					Str("object", object).
					Str("action", action).
					Msg("Access denied")
				writeError(w, r, http.StatusForbidden, CodeForbidden, "Forbidden: insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.APIResponse{
		Success: false,
		Error:   &models.APIError{Code: code, Message: message},
		Meta: &models.APIMeta{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}
