// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package validation

import (
	"strings"
	"testing"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type rankedEntry struct {
	VendorID    string `json:"vendor_id" validate:"required"`
	Explanation string `json:"explanation" validate:"required"`
}

type categoryFilter struct {
	Category models.Category `json:"category" validate:"vendor_category"`
	Limit    int             `json:"limit" validate:"min=1,max=10"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{"valid ranked entry", &rankedEntry{VendorID: "v1", Explanation: "Close to the venue"}, "", ""},
		{"missing explanation", &rankedEntry{VendorID: "v1"}, "explanation", "required"},
		{"missing vendor id", &rankedEntry{Explanation: "x"}, "vendor_id", "required"},
		{"valid category", &categoryFilter{Category: models.CategoryCatering, Limit: 10}, "", ""},
		{"unknown category", &categoryFilter{Category: "florist", Limit: 10}, "category", "vendor_category"},
		{"limit too large", &categoryFilter{Category: models.CategoryVenue, Limit: 11}, "limit", "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected validation error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			got := verr.Errors()[0]
			if got.Field != tt.wantField || got.Tag != tt.wantTag {
				t.Errorf("got field=%q tag=%q, want field=%q tag=%q", got.Field, got.Tag, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if verr := ValidateVar("4f9d3c1e-8a2b-4c7d-9e0f-1a2b3c4d5e6f", "eventID", "required,uuid"); verr != nil {
		t.Errorf("valid uuid rejected: %v", verr)
	}

	verr := ValidateVar("not-a-uuid", "eventID", "required,uuid")
	if verr == nil {
		t.Fatal("expected error for invalid uuid")
	}
	if verr.Errors()[0].Field != "eventID" {
		t.Errorf("Field = %q, want eventID", verr.Errors()[0].Field)
	}
	if !strings.Contains(verr.Error(), "eventID must be a valid UUID") {
		t.Errorf("Error() = %q", verr.Error())
	}
}

func TestToAPIError(t *testing.T) {
	verr := ValidateStruct(&rankedEntry{})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != CodeValidationError {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeValidationError)
	}
	if apiErr.Retryable {
		t.Error("validation errors must not be retryable")
	}
	fields, ok := apiErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] = %#v, want two field errors", apiErr.Details["fields"])
	}
}
