// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package api

import (
	"context"
	"time"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// Recommender is the service behind the recommendations endpoint.
type Recommender interface {
	GetRecommendations(ctx context.Context, eventID string) (*models.RecommendationResult, error)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
type Handler struct {
	recommender Recommender
	store       Pinger
	version     string
	startTime   time.Time
	readyCheck  time.Duration
}

// NewHandler creates the API handler. store backs the readiness probe.
func NewHandler(recommender Recommender, store Pinger, version string) *Handler {
	return &Handler{
		recommender: recommender,
		store:       store,
		version:     version,
		startTime:   time.Now(),
		readyCheck:  2 * time.Second,
	}
}
