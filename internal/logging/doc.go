// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package logging provides the process-wide zerolog logger.

Initialize once from main:

	logging.Init(logging.Config{Level: "info", Format: "json"})

Log with structured fields, always terminating the chain with Msg or Send:

	logging.Info().Str("event_id", id).Int("categories", n).Msg("Recommendation request")

Inside request paths use the context-aware logger so request_id and
correlation_id set by the HTTP middleware follow every line:

	logging.Ctx(ctx).Warn().Err(err).Msg("Geocoding failed, continuing without radius filter")

Components that hold a logger take one from WithComponent:

	logger := logging.WithComponent("oracle")

SlogHandler bridges to log/slog for libraries such as sutureslog.
*/
package logging
