// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package geocode turns an event's free-text location into coordinates for
// the radius filter. Every failure degrades to "no point"; callers then skip
// geographic filtering instead of failing the request.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/breaker"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/metrics"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// Lookup results used as metric labels.
const (
	resultResolved = "resolved"
	resultNoMatch  = "no_match"
	resultError    = "error"
	resultSkipped  = "skipped"
)

// Locator is the contract consumed by the recommendation service.
type Locator interface {
	Geocode(ctx context.Context, text string) *models.GeoPoint
}

// Geocoder composes a provider with a cache, an outbound rate limit and a
// circuit breaker.
type Geocoder struct {
	provider Provider
	cache    Cache
	limiter  *rate.Limiter
	cb       *gobreaker.CircuitBreaker[*models.GeoPoint]
	enabled  bool
}

// Option customizes a Geocoder.
type Option func(*Geocoder)

// WithCache sets the read-through cache. A nil cache disables caching.
func WithCache(c Cache) Option {
	return func(g *Geocoder) { g.cache = c }
}

// WithRateLimit overrides the outbound request rate.
func WithRateLimit(perSecond float64) Option {
	return func(g *Geocoder) { g.limiter = newLimiter(perSecond) }
}

// WithBreakerSettings overrides the circuit breaker thresholds.
func WithBreakerSettings(s breaker.Settings) Option {
	return func(g *Geocoder) { g.cb = newBreaker(s) }
}

// New creates a Geocoder. When cfg.Enabled is false every lookup returns nil.
func New(cfg config.GeocoderConfig, provider Provider, opts ...Option) *Geocoder {
	g := &Geocoder{
		provider: provider,
		limiter:  newLimiter(cfg.RequestsPerSecond),
		cb:       newBreaker(breaker.DefaultSettings()),
		enabled:  cfg.Enabled && provider != nil,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

// errCallerDone marks a lookup abandoned because the caller's context ended.
// Such failures say nothing about the provider's health.
var errCallerDone = errors.New("geocode: caller context done")

func newBreaker(s breaker.Settings) *gobreaker.CircuitBreaker[*models.GeoPoint] {
	s.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, errCallerDone)
	}
	return breaker.New[*models.GeoPoint]("geocoder", s)
}

// Geocode resolves text to a point, or nil when text is blank, nothing
// matched, or any dependency failed. It never returns an error.
func (g *Geocoder) Geocode(ctx context.Context, text string) *models.GeoPoint {
	text = strings.TrimSpace(text)
	if !g.enabled || text == "" {
		metrics.RecordGeocodeLookup(resultSkipped)
		return nil
	}

	ctx, span := otel.Tracer("geocode").Start(ctx, "Geocode")
	defer span.End()

	key := NormalizeKey(text)
	if p := g.fromCache(ctx, key); p != nil {
		span.SetAttributes(attribute.Bool("geocode.cache_hit", true))
		metrics.RecordGeocodeLookup(resultResolved)
		return p
	}

	log := logging.Ctx(ctx)

	if err := g.limiter.Wait(ctx); err != nil {
		log.Debug().Err(err).Msg("Geocode rate limit wait aborted")
		span.SetStatus(codes.Error, "rate limit wait aborted")
		metrics.RecordGeocodeLookup(resultError)
		return nil
	}

	start := time.Now()
	point, err := g.cb.Execute(func() (*models.GeoPoint, error) {
		point, err := g.provider.Lookup(ctx, text)
		if err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerDone, err)
		}
		return point, err
	})
	span.SetAttributes(attribute.Int64("geocode.latency_ms", time.Since(start).Milliseconds()))

	if err != nil {
		level := zerolog.WarnLevel
		if breaker.IsRejection(err) {
			level = zerolog.DebugLevel
		}
		log.WithLevel(level).Err(err).Str("provider", g.provider.Name()).Msg("Geocode lookup failed, skipping radius filter")
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		metrics.RecordGeocodeLookup(resultError)
		return nil
	}
	if point == nil {
		log.Info().Str("location", text).Msg("Geocoder found no match for location")
		metrics.RecordGeocodeLookup(resultNoMatch)
		return nil
	}

	g.toCache(ctx, key, point)
	span.SetAttributes(attribute.Float64("geo.lat", point.Lat), attribute.Float64("geo.lng", point.Lng))
	metrics.RecordGeocodeLookup(resultResolved)
	return point
}

func (g *Geocoder) fromCache(ctx context.Context, key string) *models.GeoPoint {
	if g.cache == nil {
		return nil
	}
	p, ok, err := g.cache.Get(ctx, key)
	switch {
	case err != nil:
		logging.Ctx(ctx).Warn().Err(err).Str("tier", g.cache.Tier()).Msg("Geocode cache read failed")
		metrics.RecordGeocodeCache(g.cache.Tier(), "error")
		return nil
	case !ok:
		metrics.RecordGeocodeCache(g.cache.Tier(), "miss")
		return nil
	default:
		metrics.RecordGeocodeCache(g.cache.Tier(), "hit")
		return p
	}
}

func (g *Geocoder) toCache(ctx context.Context, key string, p *models.GeoPoint) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Set(ctx, key, p); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("tier", g.cache.Tier()).Msg("Geocode cache write failed")
		metrics.RecordGeocodeCache(g.cache.Tier(), "error")
	}
}

// Close releases the cache.
func (g *Geocoder) Close() error {
	if g.cache == nil {
		return nil
	}
	return g.cache.Close()
}
