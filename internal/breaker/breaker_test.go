// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package breaker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestBreakerOpensAfterFailureRatio(t *testing.T) {
	cb := New[int]("test-open", Settings{
		MinRequests:  3,
		FailureRatio: 0.5,
		Interval:     time.Minute,
		Timeout:      time.Hour,
	})

	boom := errors.New("upstream down")
	for i := 0; i < 3; i++ {
		if _, err := cb.Execute(func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
			t.Fatalf("call %d: err = %v, want upstream error", i, err)
		}
	}

	if cb.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v, want open", cb.State())
	}

	_, err := cb.Execute(func() (int, error) { return 1, nil })
	if !IsRejection(err) {
		t.Errorf("open breaker err = %v, want rejection", err)
	}
}

func TestBreakerIgnoresClassifiedErrors(t *testing.T) {
	cb := New[int]("test-ignore", Settings{
		MinRequests:  2,
		FailureRatio: 0.5,
		Interval:     time.Minute,
		Timeout:      time.Hour,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (int, error) { return 0, fmt.Errorf("wrapped: %w", context.Canceled) })
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed", cb.State())
	}
}

func TestStateMapping(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		value int
		name  string
	}{
		{gobreaker.StateClosed, 0, "closed"},
		{gobreaker.StateHalfOpen, 1, "half-open"},
		{gobreaker.StateOpen, 2, "open"},
	}
	for _, tt := range tests {
		if got := StateValue(tt.state); got != tt.value {
			t.Errorf("StateValue(%v) = %d, want %d", tt.state, got, tt.value)
		}
		if got := StateString(tt.state); got != tt.name {
			t.Errorf("StateString(%v) = %q, want %q", tt.state, got, tt.name)
		}
	}
}
