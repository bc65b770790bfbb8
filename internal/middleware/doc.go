// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package middleware provides the HTTP middleware shared by every route.

  - RequestID: accepts or generates an X-Request-ID, echoes it on the
    response and stores it, together with a fresh correlation id, in the
    logging context so every log line of the request carries both.
  - Deadline: bounds the request context without writing a response.
  - PrometheusMetrics: request counts, latency and in-flight gauge. The
    endpoint label is the chi route pattern, not the raw path, so event
    ids do not explode label cardinality.

Both use the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
