// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package metrics defines the Prometheus collectors exported at /metrics.

Collectors are registered on the default registry through promauto at
package init, so importing the package is enough to expose them. Callers
use the Record* and Observe* helpers rather than touching the vectors
directly, which keeps label sets consistent.

# Recommendation pipeline

  - vendormatch_recommendation_requests_total{outcome}
  - vendormatch_recommendation_duration_seconds
  - vendormatch_candidates_per_category
  - vendormatch_category_failures_total{category}
  - vendormatch_oracle_requests_total{provider,outcome}
  - vendormatch_oracle_duration_seconds{provider}

# Geocoding

  - vendormatch_geocode_lookups_total{result}
  - vendormatch_geocode_cache_total{tier,result}

# Stores, breakers and HTTP

  - vendormatch_store_query_duration_seconds{backend,operation}
  - vendormatch_store_query_errors_total{backend,operation}
  - vendormatch_circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - vendormatch_circuit_breaker_state_transitions_total{name,from_state,to_state}
  - api_requests_total{method,endpoint,status}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
*/
package metrics
