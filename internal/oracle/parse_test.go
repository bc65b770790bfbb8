// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package oracle

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

func TestParseRanking_Valid(t *testing.T) {
	raw := `{
		"venue": [
			{"vendor_id": "v2", "explanation": "Seats 450 and is 3 miles from Edison."},
			{"vendor_id": "v1", "explanation": "Within budget for June 20."}
		],
		"fireworks": [{"vendor_id": "x", "explanation": "ignored"}]
	}`

	got, err := ParseRanking(raw, []models.Category{models.CategoryVenue, models.CategoryCatering})
	if err != nil {
		t.Fatalf("ParseRanking() error = %v", err)
	}
	if len(got[models.CategoryVenue]) != 2 || got[models.CategoryVenue][0].VendorID != "v2" {
		t.Errorf("venue = %+v, want oracle order preserved", got[models.CategoryVenue])
	}
	if recs, ok := got[models.CategoryCatering]; !ok || len(recs) != 0 {
		t.Errorf("omitted category = %+v, %v; want present and empty", recs, ok)
	}
	if _, ok := got["fireworks"]; ok {
		t.Error("unrequested keys must be ignored")
	}
}

func TestParseRanking_CodeFenceAndNull(t *testing.T) {
	raw := "```json\n{\"venue\": null, \"catering\": [{\"vendor_id\": \"c1\", \"explanation\": \"Serves banana-leaf meals.\"}]}\n```"

	got, err := ParseRanking(raw, []models.Category{models.CategoryVenue, models.CategoryCatering})
	if err != nil {
		t.Fatalf("ParseRanking() error = %v", err)
	}
	if len(got[models.CategoryVenue]) != 0 || len(got[models.CategoryCatering]) != 1 {
		t.Errorf("ParseRanking() = %+v", got)
	}
}

func TestParseRanking_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"prose", "Here are my picks: Sangeetha Hall"},
		{"array at top level", `[{"vendor_id":"v1","explanation":"x"}]`},
		{"truncated", `{"venue": [{"vendor_id": "v1", "expl`},
		{"category not an array", `{"venue": {"vendor_id": "v1", "explanation": "x"}}`},
		{"item not an object", `{"venue": ["v1"]}`},
		{"missing explanation", `{"venue": [{"vendor_id": "v1"}]}`},
		{"empty vendor id", `{"venue": [{"vendor_id": "  ", "explanation": "fits"}]}`},
		{"numeric vendor id", `{"venue": [{"vendor_id": 7, "explanation": "fits"}]}`},
		{"empty explanation", `{"venue": [{"vendor_id": "v1", "explanation": ""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := ParseRanking(tt.raw, []models.Category{models.CategoryVenue}); err == nil {
				t.Errorf("ParseRanking() = %+v, want error", got)
			}
		})
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection reset")
	u := unavailable("openai", 503, cause)
	m := malformed("openai", errors.New("not json"))

	if !errors.Is(u, ErrUnavailable) || errors.Is(u, ErrMalformedResponse) {
		t.Error("unavailable error kind mismatch")
	}
	if !errors.Is(u, cause) {
		t.Error("unavailable error should unwrap to its cause")
	}
	if !errors.Is(m, ErrMalformedResponse) || errors.Is(m, ErrUnavailable) {
		t.Error("malformed error kind mismatch")
	}
	if !IsRetryable(u) || IsRetryable(m) {
		t.Error("only unavailable errors are retryable")
	}

	var oe *Error
	if !errors.As(fmt.Errorf("wrapped: %w", u), &oe) || oe.StatusCode != 503 || oe.Provider != "openai" {
		t.Errorf("errors.As() = %+v", oe)
	}
	if !strings.Contains(u.Error(), "status 503") {
		t.Errorf("Error() = %q, want status", u.Error())
	}
}
