// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package api exposes the recommendation service over HTTP using the chi router.

Routes:

	GET /api/v1/events/{eventID}/recommendations   ranked vendors per category
	GET /health/live                               liveness probe
	GET /health/ready                              readiness probe (pings the store)
	GET /metrics                                   Prometheus exposition
	GET /swagger/*                                 API documentation (optional)

Every JSON body uses the models.APIResponse envelope. Errors carry a stable
machine-readable code and a retryable flag, so clients can tell "nothing
matched" (200, no_candidates) from "something failed":

	EVENT_NOT_FOUND            404
	VALIDATION_ERROR           400
	UNAUTHORIZED               401
	ORACLE_MALFORMED_RESPONSE  502
	ORACLE_UNAVAILABLE         503  retryable
	STORE_UNAVAILABLE          503  retryable
	REQUEST_TIMEOUT            504  retryable

Middleware, outermost first: request id, real IP, panic recovery, CORS,
per-IP rate limiting, Prometheus metrics, request timeout and bearer token
authentication on /api/v1.
*/
package api
