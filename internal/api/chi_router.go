// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/middleware"
)

// Authenticator guards the data routes. *auth.Middleware satisfies it.
type Authenticator interface {
	Authenticate(next http.Handler) http.Handler
}

// Authorizer checks the caller's role. *authz.Middleware satisfies it.
type Authorizer interface {
	Authorize(object, action string) func(http.Handler) http.Handler
}

// Authorization objects and actions for the data routes.
const (
	objectRecommendations = "recommendations"
	actionRead            = "read"
)

// RouterConfig tunes the router.
type RouterConfig struct {
	// RequestTimeout bounds one API request, oracle retries included.
	RequestTimeout time.Duration
	SwaggerEnabled bool
	Middleware     *ChiMiddlewareConfig

	// Authorizer is optional; nil lets every authenticated caller through.
	Authorizer Authorizer
}

// Router wires handlers and middleware.
type Router struct {
	handler       *Handler
	auth          Authenticator
	chiMiddleware *ChiMiddleware
	cfg           RouterConfig
}

// NewRouter creates a Router. auth may be nil, which leaves the data
// routes open.
func NewRouter(handler *Handler, auth Authenticator, cfg RouterConfig) *Router {
	return &Router{
		handler:       handler,
		auth:          auth,
		chiMiddleware: NewChiMiddleware(cfg.Middleware),
		cfg:           cfg,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	// Health
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Data
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		if router.cfg.RequestTimeout > 0 {
			r.Use(middleware.Deadline(router.cfg.RequestTimeout))
		}
		if router.auth != nil {
			r.Use(router.auth.Authenticate)
		}

		r.With(router.authorize(objectRecommendations, actionRead)).
			Get("/events/{eventID}/recommendations", router.handler.GetRecommendations)
	})

	// Observability
	r.Handle("/metrics", promhttp.Handler())
	if router.cfg.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	}

	return r
}

func (router *Router) authorize(object, action string) func(http.Handler) http.Handler {
	if router.cfg.Authorizer == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return router.cfg.Authorizer.Authorize(object, action)
}
