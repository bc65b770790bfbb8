// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package recommend

import (
	"errors"
	"fmt"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store"
)

var (
	// ErrEventNotFound is returned when the event id does not exist.
	// It also matches store.ErrNotFound.
	ErrEventNotFound = fmt.Errorf("event not found: %w", store.ErrNotFound)

	// ErrTotalStoreFailure is returned when every category query failed,
	// so an empty result would misreport an outage as "nothing matched".
	ErrTotalStoreFailure = errors.New("all vendor store queries failed")
)
