// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeSuccess))
	RecordRecommendation(OutcomeSuccess, 1200*time.Millisecond)
	after := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeSuccess))

	if after-before != 1 {
		t.Errorf("success counter increased by %v, want 1", after-before)
	}
}

func TestObserveStoreQuery(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantErrorIncr float64
	}{
		{"success", nil, 0},
		{"failure", errors.New("connection refused"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := StoreQueryErrors.WithLabelValues("duckdb", "query_vendors")
			before := testutil.ToFloat64(counter)
			ObserveStoreQuery("duckdb", "query_vendors", 3*time.Millisecond, tt.err)
			if got := testutil.ToFloat64(counter) - before; got != tt.wantErrorIncr {
				t.Errorf("error counter increased by %v, want %v", got, tt.wantErrorIncr)
			}
		})
	}
}

func TestRecordBreakerTransition(t *testing.T) {
	RecordBreakerTransition("oracle-test", "closed", "open", 2)

	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("oracle-test")); got != 2 {
		t.Errorf("state gauge = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("oracle-test", "closed", "open")); got != 1 {
		t.Errorf("transition counter = %v, want 1", got)
	}
}

func TestGeocodeCounters(t *testing.T) {
	lookup := GeocodeLookups.WithLabelValues("resolved")
	cacheHit := GeocodeCache.WithLabelValues("memory", "hit")
	lb, cb := testutil.ToFloat64(lookup), testutil.ToFloat64(cacheHit)

	RecordGeocodeLookup("resolved")
	RecordGeocodeCache("memory", "hit")

	if testutil.ToFloat64(lookup)-lb != 1 || testutil.ToFloat64(cacheHit)-cb != 1 {
		t.Error("geocode counters did not increase")
	}
}

func TestTrackActiveRequest_Concurrent(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			RecordAPIRequest("GET", "/api/v1/events/{eventID}/recommendations", "200", time.Millisecond)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active requests = %v, want %v", got, start)
	}
}
