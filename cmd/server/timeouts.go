// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package main

import "time"

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeGrace        = 5 * time.Second
	idleTimeout       = 120 * time.Second
)
