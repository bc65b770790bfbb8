// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package services

import (
	"context"
	"fmt"
)

// ScheduledJob is a component with a Start/Stop lifecycle.
// *geocode.Maintenance satisfies it.
type ScheduledJob interface {
	Start(ctx context.Context) error
	Stop() error
}

// SchedulerService keeps a ScheduledJob running until its context ends.
type SchedulerService struct {
	job  ScheduledJob
	name string
}

// NewSchedulerService wraps job under the given service name.
func NewSchedulerService(name string, job ScheduledJob) *SchedulerService {
	if name == "" {
		name = "scheduler"
	}
	return &SchedulerService{job: job, name: name}
}

// Serve implements suture.Service. A Start error is returned immediately so
// the supervisor restarts the job under its backoff policy.
func (s *SchedulerService) Serve(ctx context.Context) error {
	if err := s.job.Start(ctx); err != nil {
		return fmt.Errorf("%s start failed: %w", s.name, err)
	}

	<-ctx.Done()

	if err := s.job.Stop(); err != nil {
		return fmt.Errorf("%s stop failed: %w", s.name, err)
	}
	return ctx.Err()
}

func (s *SchedulerService) String() string {
	return s.name
}
