// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package models

import (
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Event is a read-only snapshot of a planned Arangetram taken at the start
// of a recommendation request.
type Event struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	EventDate  time.Time  `json:"event_date"`
	Location   string     `json:"location,omitempty"`
	Budget     *float64   `json:"budget,omitempty"`
	Categories []Category `json:"categories"`
}

// HasLocation reports whether the event carries a non-blank location label.
func (e *Event) HasLocation() bool {
	return strings.TrimSpace(e.Location) != ""
}

// HasBudget reports whether a budget ceiling is set.
func (e *Event) HasBudget() bool {
	return e.Budget != nil
}

// GeoPoint is a resolved coordinate pair with the geocoder's display label.
type GeoPoint struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"display_name"`
}

// CalendarDate truncates t to midnight UTC of its own calendar day, so
// values read from DATE columns in any zone compare by Y/M/D only.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports calendar-date equality, ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
