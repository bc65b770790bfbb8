// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package config loads and validates service configuration with koanf.

Sources, lowest to highest precedence:
 1. defaults from defaultConfig()
 2. YAML file from CONFIG_PATH, ./config.yaml or /etc/vendormatch/config.yaml
 3. environment variables (see envMappings)

Example config.yaml:

	server:
	  port: 8080
	database:
	  driver: postgres
	  dsn: postgres://vendormatch@db:5432/app?sslmode=require
	geocoder:
	  cache:
	    backend: redis
	    redis_url: redis://cache:6379/0
	oracle:
	  provider: openai
	  model: gpt-4o-mini
	security:
	  cors_origins: ["https://app.example.org"]

Secrets (ORACLE_API_KEY, JWT_SECRET, DATABASE_URL) are expected from the
environment.
*/
package config
