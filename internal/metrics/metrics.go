// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for recommendation requests.
const (
	OutcomeSuccess      = "success"
	OutcomeEmpty        = "empty"
	OutcomeNoCandidates = "no_candidates"
	OutcomeNotFound     = "not_found"
	OutcomeStoreFailure = "store_failure"
	OutcomeOracleError  = "oracle_error"
	OutcomeCanceled     = "canceled"
	OutcomeError        = "error"
)

var (
	// Recommendation pipeline
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendormatch_recommendation_requests_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vendormatch_recommendation_duration_seconds",
			Help:    "End-to-end duration of a recommendation request",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
	)

	CandidatesPerCategory = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vendormatch_candidates_per_category",
			Help:    "Eligible candidates found for a category after availability filtering",
			Buckets: []float64{0, 1, 2, 3, 5, 7, 10},
		},
	)

	CategoryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendormatch_category_failures_total",
			Help: "Categories skipped because a store query failed",
		},
		[]string{"category"},
	)

	OracleRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendormatch_oracle_requests_total",
			Help: "Ranking oracle calls by provider and outcome",
		},
		[]string{"provider", "outcome"}, // outcome: success, malformed, unavailable, canceled
	)

	OracleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vendormatch_oracle_duration_seconds",
			Help:    "Duration of ranking oracle calls",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
		[]string{"provider"},
	)

	// Geocoding
	GeocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendormatch_geocode_lookups_total",
			Help: "Geocode lookups by result",
		},
		[]string{"result"}, // resolved, no_match, error, skipped
	)

	GeocodeCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendormatch_geocode_cache_total",
			Help: "Geocode cache lookups by tier and result",
		},
		[]string{"tier", "result"}, // result: hit, miss, error
	)

	// Stores
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vendormatch_store_query_duration_seconds",
			Help:    "Duration of store queries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendormatch_store_query_errors_total",
			Help: "Failed store queries",
		},
		[]string{"backend", "operation"},
	)

	// Circuit breakers
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vendormatch_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendormatch_circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Authorization
	AuthzDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_decisions_total",
			Help: "Authorization decisions by role and result",
		},
		[]string{"role", "result"}, // result: allowed, denied
	)

	AuthzDecisionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "authz_decision_duration_seconds",
			Help:    "Time spent evaluating authorization policy",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// System
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordRecommendation records a finished recommendation request.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendationRequests.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// ObserveCandidates records the candidate count for one category.
func ObserveCandidates(n int) {
	CandidatesPerCategory.Observe(float64(n))
}

// RecordCategoryFailure counts a category dropped due to a store error.
func RecordCategoryFailure(category string) {
	CategoryFailures.WithLabelValues(category).Inc()
}

// RecordOracleRequest records one oracle attempt.
func RecordOracleRequest(provider, outcome string, duration time.Duration) {
	OracleRequests.WithLabelValues(provider, outcome).Inc()
	OracleDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordGeocodeLookup counts a geocode result.
func RecordGeocodeLookup(result string) {
	GeocodeLookups.WithLabelValues(result).Inc()
}

// RecordGeocodeCache counts a cache tier hit, miss or error.
func RecordGeocodeCache(tier, result string) {
	GeocodeCache.WithLabelValues(tier, result).Inc()
}

// ObserveStoreQuery records a store query and counts it as an error when
// err is non-nil.
func ObserveStoreQuery(backend, operation string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordBreakerTransition updates the state gauge and transition counter.
func RecordBreakerTransition(name, from, to string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordAuthzDecision counts one policy decision.
func RecordAuthzDecision(role string, allowed bool, duration time.Duration) {
	result := "denied"
	if allowed {
		result = "allowed"
	}
	AuthzDecisions.WithLabelValues(role, result).Inc()
	AuthzDecisionDuration.Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
