// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/oracle"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/recommend"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeEventNotFound      = "EVENT_NOT_FOUND"
	ErrCodeOracleMalformed    = "ORACLE_MALFORMED_RESPONSE"
	ErrCodeOracleUnavailable  = "ORACLE_UNAVAILABLE"
	ErrCodeStoreUnavailable   = "STORE_UNAVAILABLE"
	ErrCodeRequestTimeout     = "REQUEST_TIMEOUT"
	ErrCodeClientClosed       = "CLIENT_CLOSED_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// StatusClientClosedRequest reports a caller that went away (nginx convention).
const StatusClientClosedRequest = 499

// mapError is the single place service errors become HTTP responses.
func mapError(err error) (int, *models.APIError) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.ToAPIError()
	case errors.Is(err, recommend.ErrEventNotFound):
		return http.StatusNotFound, &models.APIError{
			Code:    ErrCodeEventNotFound,
			Message: "Event not found",
		}
	case errors.Is(err, oracle.ErrMalformedResponse):
		return http.StatusBadGateway, &models.APIError{
			Code:    ErrCodeOracleMalformed,
			Message: "The ranking service returned an unusable response",
		}
	case errors.Is(err, oracle.ErrUnavailable):
		return http.StatusServiceUnavailable, &models.APIError{
			Code:      ErrCodeOracleUnavailable,
			Message:   "Ranking service is temporarily unavailable",
			Retryable: true,
		}
	case errors.Is(err, recommend.ErrTotalStoreFailure):
		return http.StatusServiceUnavailable, &models.APIError{
			Code:      ErrCodeStoreUnavailable,
			Message:   "Vendor data is temporarily unavailable",
			Retryable: true,
		}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, &models.APIError{
			Code:      ErrCodeRequestTimeout,
			Message:   "The request took too long to complete",
			Retryable: true,
		}
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, &models.APIError{
			Code:    ErrCodeClientClosed,
			Message: "The request was canceled",
		}
	default:
		return http.StatusInternalServerError, &models.APIError{
			Code:    ErrCodeInternalError,
			Message: "An internal error occurred",
		}
	}
}
