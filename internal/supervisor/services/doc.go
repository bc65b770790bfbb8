// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

/*
Package services adapts the service's long-running components to
suture.Service.

HTTPServerService turns http.Server's blocking ListenAndServe into a
context-aware Serve with a bounded graceful Shutdown.

SchedulerService wraps anything with a Start(ctx) error / Stop() error
lifecycle, such as geocode.Maintenance, and keeps it running until the
supervisor cancels its context.
*/
package services
