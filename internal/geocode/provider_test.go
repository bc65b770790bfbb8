// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *NominatimProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewNominatimProvider(config.GeocoderConfig{
		BaseURL:      server.URL + "/",
		APIKey:       "test-key",
		UserAgent:    "vendormatch-test/1.0",
		CountryCodes: "us",
		Timeout:      2 * time.Second,
	})
}

func TestNominatimProvider_Lookup(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		q := r.URL.Query()
		checks := map[string]string{
			"q":            "Edison, NJ",
			"format":       "jsonv2",
			"limit":        "1",
			"key":          "test-key",
			"countrycodes": "us",
		}
		for k, want := range checks {
			if got := q.Get(k); got != want {
				t.Errorf("query %s = %q, want %q", k, got, want)
			}
		}
		if ua := r.Header.Get("User-Agent"); ua != "vendormatch-test/1.0" {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"40.5187","lon":"-74.4121","display_name":"Edison, Middlesex County, New Jersey, United States"}]`))
	})

	got, err := p.Lookup(context.Background(), "Edison, NJ")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got == nil || got.Lat != 40.5187 || got.Lng != -74.4121 {
		t.Fatalf("Lookup() = %+v, want Edison coordinates", got)
	}
	if got.DisplayName == "" {
		t.Error("DisplayName should be populated")
	}
}

func TestNominatimProvider_Responses(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantNil   bool
		wantError bool
	}{
		{"empty result set", http.StatusOK, `[]`, true, false},
		{"not found", http.StatusNotFound, `{"error":"Unable to geocode"}`, true, false},
		{"server error", http.StatusInternalServerError, `oops`, true, true},
		{"rate limited", http.StatusTooManyRequests, ``, true, true},
		{"invalid json", http.StatusOK, `{not json`, true, true},
		{"invalid latitude", http.StatusOK, `[{"lat":"north","lon":"1"}]`, true, true},
		{"out of range", http.StatusOK, `[{"lat":"95","lon":"1"}]`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := p.Lookup(context.Background(), "somewhere")
			if (err != nil) != tt.wantError {
				t.Errorf("Lookup() error = %v, wantError %v", err, tt.wantError)
			}
			if (got == nil) != tt.wantNil {
				t.Errorf("Lookup() = %+v, wantNil %v", got, tt.wantNil)
			}
		})
	}
}

func TestNominatimProvider_ContextCanceled(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Lookup(ctx, "Edison"); err == nil {
		t.Error("Lookup() with canceled context should fail")
	}
}
