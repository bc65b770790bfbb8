// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package memstore is an in-process store.Store used by tests of the
// pipeline packages. It applies the same predicates and ordering as the
// SQL backends and lets tests inject failures per operation.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store"
)

// ErrInjected is returned by operations configured to fail.
var ErrInjected = errors.New("injected store failure")

// Vendor is a stored vendor row.
type Vendor struct {
	models.VendorCandidate
	Lat, Lng  *float64
	Published bool
}

// Store holds events, vendors and blocks in memory.
type Store struct {
	mu      sync.Mutex
	events  map[string]models.Event
	vendors []Vendor
	blocks  map[string][]time.Time

	// Failure injection.
	FailEvents       bool
	FailCategories   map[models.Category]bool
	FailAvailability bool

	vendorQueries []store.VendorQuery
	blockQueries  int
}

var _ store.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		events:         make(map[string]models.Event),
		blocks:         make(map[string][]time.Time),
		FailCategories: make(map[models.Category]bool),
	}
}

// AddEvent stores ev.
func (s *Store) AddEvent(ev models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[ev.ID] = ev
}

// AddVendor stores v.
func (s *Store) AddVendor(v Vendor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors = append(s.vendors, v)
}

// Block marks vendorID unavailable on date.
func (s *Store) Block(vendorID string, date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[vendorID] = append(s.blocks[vendorID], date)
}

// VendorQueries returns the queries received so far.
func (s *Store) VendorQueries() []store.VendorQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]store.VendorQuery(nil), s.vendorQueries...)
}

// AvailabilityQueries returns how many availability lookups were made.
func (s *Store) AvailabilityQueries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blockQueries
}

// GetEvent implements store.EventStore.
func (s *Store) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailEvents {
		return nil, ErrInjected
	}
	ev, ok := s.events[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	ev.Categories = append([]models.Category(nil), ev.Categories...)
	return &ev, nil
}

// QueryVendors implements store.VendorStore.
func (s *Store) QueryVendors(ctx context.Context, q store.VendorQuery) ([]models.VendorCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vendorQueries = append(s.vendorQueries, q)
	if s.FailCategories[q.Category] {
		return nil, ErrInjected
	}

	var out []models.VendorCandidate
	for _, v := range s.vendors {
		if v.Category != q.Category || (q.PublishedOnly && !v.Published) {
			continue
		}
		if q.PriceCeiling != nil && v.PriceMin != nil && *v.PriceMin > *q.PriceCeiling {
			continue
		}
		c := v.VendorCandidate
		if q.Near != nil {
			if v.Lat == nil || v.Lng == nil {
				continue
			}
			d := store.HaversineMiles(q.Near.Lat, q.Near.Lng, *v.Lat, *v.Lng)
			if d > q.Near.RadiusMiles {
				continue
			}
			c.DistanceMiles = &d
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// BlockedVendorIDs implements store.AvailabilityStore.
func (s *Store) BlockedVendorIDs(ctx context.Context, vendorIDs []string, date time.Time) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blockQueries++
	if s.FailAvailability {
		return nil, ErrInjected
	}

	var out []string
	for _, id := range vendorIDs {
		for _, d := range s.blocks[id] {
			if models.SameDay(d, date) {
				out = append(out, id)
				break
			}
		}
	}
	return out, nil
}

// Ping implements store.Store.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// Close implements store.Store.
func (s *Store) Close() error { return nil }
