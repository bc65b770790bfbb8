// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package geocode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/cache"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// Cache stores resolved points keyed by normalized location text. Only
// successful lookups are stored.
type Cache interface {
	Get(ctx context.Context, key string) (*models.GeoPoint, bool, error)
	Set(ctx context.Context, key string, point *models.GeoPoint) error
	Tier() string
	Close() error
}

// Maintainer is implemented by tiers that need periodic housekeeping.
type Maintainer interface {
	Maintain(ctx context.Context) error
}

// NormalizeKey lowercases and collapses whitespace so equivalent spellings
// share one cache entry.
func NormalizeKey(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NewCache builds the configured tier. Backend "none" returns nil.
func NewCache(ctx context.Context, cfg config.GeoCacheConfig) (Cache, error) {
	switch cfg.Backend {
	case config.CacheBackendNone, "":
		return nil, nil
	case config.CacheBackendMemory:
		return NewMemoryCache(cfg.Capacity, cfg.TTL), nil
	case config.CacheBackendBadger:
		return NewBadgerCache(cfg.BadgerPath, cfg.TTL)
	case config.CacheBackendRedis:
		return NewRedisCache(ctx, cfg.RedisURL, cfg.KeyPrefix, cfg.TTL)
	default:
		return nil, fmt.Errorf("unknown geocode cache backend %q", cfg.Backend)
	}
}

// MemoryCache is the in-process tier.
type MemoryCache struct {
	lru *cache.LRU[models.GeoPoint]
}

// NewMemoryCache creates an LRU-bounded cache.
func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{lru: cache.NewLRU[models.GeoPoint](capacity, ttl)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*models.GeoPoint, bool, error) {
	p, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, point *models.GeoPoint) error {
	if point == nil {
		return nil
	}
	c.lru.Set(key, *point)
	return nil
}

func (c *MemoryCache) Tier() string { return config.CacheBackendMemory }

func (c *MemoryCache) Close() error { return nil }

// Maintain drops expired entries.
func (c *MemoryCache) Maintain(context.Context) error {
	c.lru.CleanupExpired()
	return nil
}

// Stats exposes hit and miss counters.
func (c *MemoryCache) Stats() cache.Stats {
	return c.lru.Stats()
}
