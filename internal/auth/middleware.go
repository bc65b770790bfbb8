// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

type contextKey string

// ClaimsContextKey holds *Claims for authenticated requests.
const ClaimsContextKey contextKey = "claims"

// CodeUnauthorized is the API error code for missing or rejected tokens.
const CodeUnauthorized = "UNAUTHORIZED"

// Middleware enforces authentication on protected routes.
type Middleware struct {
	authMode string
	verifier *Verifier
}

// NewMiddleware builds the middleware for cfg.AuthMode. The verifier is
// only required in jwt mode.
func NewMiddleware(cfg config.SecurityConfig) (*Middleware, error) {
	m := &Middleware{authMode: cfg.AuthMode}
	if cfg.AuthMode == config.AuthModeNone {
		return m, nil
	}
	v, err := NewVerifier(cfg)
	if err != nil {
		return nil, err
	}
	m.verifier = v
	return m, nil
}

// Authenticate is chi middleware rejecting requests without a valid token.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == config.AuthModeNone {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeUnauthorized(w, r, "missing bearer token")
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			writeUnauthorized(w, r, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		ctx = logging.ContextWithLogger(ctx, logging.LoggerFromContext(ctx).With().Str("user_id", claims.Subject).Logger())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the authenticated caller, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return c, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.APIResponse{
		Success: false,
		Error:   &models.APIError{Code: CodeUnauthorized, Message: "Unauthorized: " + message},
		Meta: &models.APIMeta{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}
