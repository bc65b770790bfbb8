// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package geocode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

const badgerKeyPrefix = "geo:"

// BadgerCache persists resolved points on local disk so they survive
// restarts without an external service.
type BadgerCache struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadgerCache opens (or creates) the cache directory.
func NewBadgerCache(path string, ttl time.Duration) (*BadgerCache, error) {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, fmt.Errorf("create badger directory: %w", err)
	}
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return NewBadgerCacheWithDB(db, ttl), nil
}

// NewBadgerCacheWithDB wraps an already opened database.
func NewBadgerCacheWithDB(db *badger.DB, ttl time.Duration) *BadgerCache {
	return &BadgerCache{db: db, ttl: ttl}
}

func (c *BadgerCache) Get(_ context.Context, key string) (*models.GeoPoint, bool, error) {
	var point models.GeoPoint
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &point)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("badger get: %w", err)
	}
	return &point, true, nil
}

func (c *BadgerCache) Set(_ context.Context, key string, point *models.GeoPoint) error {
	if point == nil {
		return nil
	}
	data, err := json.Marshal(point)
	if err != nil {
		return fmt.Errorf("marshal point: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(badgerKeyPrefix+key), data)
		if c.ttl > 0 {
			e = e.WithTTL(c.ttl)
		}
		return txn.SetEntry(e)
	})
}

func (c *BadgerCache) Tier() string { return config.CacheBackendBadger }

func (c *BadgerCache) Close() error { return c.db.Close() }

// Maintain runs value-log GC until there is nothing left to rewrite.
func (c *BadgerCache) Maintain(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := c.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("badger value log gc: %w", err)
		}
	}
}
