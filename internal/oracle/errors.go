// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package oracle

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport failures, timeouts, rate limiting,
	// non-success HTTP statuses and an open circuit. Retryable.
	ErrUnavailable = errors.New("ranking oracle unavailable")

	// ErrMalformedResponse means the oracle answered but the content did
	// not match the required shape. Not retried.
	ErrMalformedResponse = errors.New("ranking oracle returned a malformed response")
)

// Error carries provider detail alongside one of the sentinel kinds.
type Error struct {
	Kind       error
	Provider   string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func unavailable(provider string, status int, err error) error {
	return &Error{Kind: ErrUnavailable, Provider: provider, StatusCode: status, Err: err}
}

func malformed(provider string, err error) error {
	return &Error{Kind: ErrMalformedResponse, Provider: provider, Err: err}
}

// IsRetryable reports whether one more attempt may succeed.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
