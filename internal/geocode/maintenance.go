// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package geocode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
)

// Maintenance runs a cache tier's housekeeping on a cron schedule: expired
// entry cleanup for the memory tier, value-log GC for badger.
type Maintenance struct {
	target Maintainer
	tier   string
	spec   string

	mu   sync.Mutex
	cron *cron.Cron
	runs int
}

// NewMaintenance returns nil when the cache needs no housekeeping.
func NewMaintenance(c Cache, spec string) *Maintenance {
	m, ok := c.(Maintainer)
	if !ok {
		return nil
	}
	if spec == "" {
		spec = "@every 30m"
	}
	return &Maintenance{target: m, tier: c.Tier(), spec: spec}
}

// Start registers the job and starts the scheduler.
func (m *Maintenance) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := cron.New()
	if _, err := c.AddFunc(m.spec, func() { m.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	c.Start()
	m.cron = c

	logging.Info().Str("tier", m.tier).Str("schedule", m.spec).Msg("Geocode cache maintenance scheduled")
	return nil
}

// Stop waits for a running job to finish.
func (m *Maintenance) Stop() error {
	m.mu.Lock()
	c := m.cron
	m.cron = nil
	m.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
	return nil
}

// RunOnce performs one maintenance pass.
func (m *Maintenance) RunOnce(ctx context.Context) {
	start := time.Now()
	err := m.target.Maintain(ctx)

	m.mu.Lock()
	m.runs++
	m.mu.Unlock()

	if err != nil {
		logging.Warn().Err(err).Str("tier", m.tier).Msg("Geocode cache maintenance failed")
		return
	}
	logging.Debug().Str("tier", m.tier).Dur("took", time.Since(start)).Msg("Geocode cache maintenance done")
}

// Runs reports how many passes have completed.
func (m *Maintenance) Runs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}
