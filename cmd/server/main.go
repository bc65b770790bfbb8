// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/sreshtalluri/arangetaram-planning-sub000/docs" // swagger spec registration
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/api"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/auth"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/authz"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/eligibility"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/recommend"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/supervisor"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/supervisor/services"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/tracing"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

//nolint:gocyclo // sequential startup
func run() int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Msg("Ignoring unreadable .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_driver", cfg.Database.Driver).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting vendor recommendation service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, version)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize tracing")
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logging.Error().Err(err).Msg("Error flushing trace exporter")
		}
	}()

	st, err := openStore(ctx, cfg.Database)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to open store")
		return 1
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	geo := buildGeocoder(ctx, cfg.Geocoder)
	defer func() {
		if err := geo.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing geocode cache")
		}
	}()

	ranker, err := buildOracle(ctx, cfg.Oracle)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to configure ranking oracle")
		return 1
	}

	filter := eligibility.New(st, st, eligibility.Config{
		RadiusMiles:   cfg.Recommend.RadiusMiles,
		MaxCandidates: cfg.Recommend.MaxCandidates,
	})
	svc := recommend.NewService(st, filter, geo.geocoder, ranker, recommend.ConfigFrom(cfg.Recommend, cfg.Oracle))

	authMiddleware, err := auth.NewMiddleware(cfg.Security)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to configure authentication")
		return 1
	}
	var authorizer api.Authorizer
	if cfg.Security.AuthMode == config.AuthModeNone {
		logging.Warn().Msg("Authentication is DISABLED (AUTH_MODE=none); recommendation routes are public")
	} else {
		enforcer, err := authz.NewEnforcer(authz.Config{
			PolicyPath:  cfg.Security.AuthzPolicyPath,
			DecisionTTL: cfg.Security.AuthzCacheTTL,
		})
		if err != nil {
			logging.Error().Err(err).Msg("Failed to load authorization policy")
			return 1
		}
		logging.Info().Int("rules", enforcer.PolicyCount()).Msg("Authorization policy loaded")
		authorizer = authz.NewMiddleware(enforcer)
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	router := api.NewRouter(api.NewHandler(svc, st, version), authMiddleware, api.RouterConfig{
		RequestTimeout: cfg.Server.Timeout,
		SwaggerEnabled: cfg.Server.SwaggerEnabled,
		Middleware:     api.ChiMiddlewareConfigFrom(cfg.Security),
		Authorizer:     authorizer,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		// The write timeout sits just past the request deadline so the
		// JSON timeout body can still be written.
		WriteTimeout: cfg.Server.Timeout + writeGrace,
		IdleTimeout:  idleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}
	if geo.maintenance != nil {
		tree.AddDataService(services.NewSchedulerService("geocode-cache-maintenance", geo.maintenance))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", server.Addr).Msg("Supervisor tree starting")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
		reportUnstopped(tree)
		return 1
	}
	reportUnstopped(tree)

	logging.Info().Msg("Shutdown complete")
	return 0
}

func reportUnstopped(tree *supervisor.SupervisorTree) {
	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		logging.Warn().Err(err).Msg("Could not collect unstopped service report")
		return
	}
	for _, s := range report {
		logging.Warn().Str("service", s.Name).Msg("Service did not stop within the shutdown timeout")
	}
}
