// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package supervisor runs the long-lived parts of the recommendation service
under a suture v4 supervisor tree.

# Layout

	RootSupervisor ("vendor-recommender")
	├── DataSupervisor ("data-layer")
	│   └── SchedulerService ("geocode-cache-maintenance")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing cache sweeper is restarted inside the data layer without touching
the HTTP server. Restart pacing follows suture's threshold and decay model:
once FailureThreshold failures accumulate (decaying over FailureDecay seconds)
the supervisor backs off for FailureBackoff before trying again.

# Logging

Supervisor events go through sutureslog. The slog.Logger passed to
NewSupervisorTree is normally logging.NewSlogLogger(), so restarts and
backoffs land in the same zerolog stream as request logs.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(services.NewSchedulerService("geocode-cache-maintenance", maintenance))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
