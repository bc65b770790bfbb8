// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package main is the entry point for the vendor recommendation server.

Given an event id, the server returns up to three ranked vendors for each
service category the event still needs, chosen from the published vendors
near the event, within budget and free on the event date.

# Startup

	.env (optional, godotenv)
	  └── config.Load (koanf: defaults, YAML file, environment)
	      └── logging.Init (zerolog)
	          ├── store: duckdb (default) or postgres
	          ├── geocoder: Nominatim + cache tier (memory, badger, redis)
	          ├── oracle: OpenAI-compatible or Gemini
	          ├── recommend.Service
	          └── api.Router (chi)

Long-running parts run under a suture supervisor tree:

	RootSupervisor ("vendor-recommender")
	├── DataSupervisor ("data-layer")
	│   └── geocode-cache-maintenance (when the cache tier needs it)
	└── APISupervisor ("api-layer")
	    └── http-server

# Configuration

The most common environment variables:

	DB_DRIVER=duckdb|postgres
	DUCKDB_PATH=/data/vendormatch.duckdb
	DATABASE_URL=postgres://...
	ORACLE_PROVIDER=openai|gemini
	ORACLE_API_KEY=...
	GEOCODER_CACHE_BACKEND=memory|badger|redis|none
	AUTH_MODE=jwt|none
	JWT_SECRET=...

See internal/config for the full list.

# Signals

SIGINT and SIGTERM cancel the supervisor context. In-flight requests get
SERVER_SHUTDOWN_TIMEOUT to drain before the store and cache are closed.
*/
package main
