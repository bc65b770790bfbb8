// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/geocode"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/metrics"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/oracle"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/store"
)

// maxOracleAttempts is the first call plus one automatic retry.
const maxOracleAttempts = 2

// CandidateFilter selects the eligible vendors of one category.
// *eligibility.Filter satisfies it.
type CandidateFilter interface {
	FilterCandidates(ctx context.Context, category models.Category, event *models.Event, geo *models.GeoPoint) ([]models.VendorCandidate, error)
}

// Config tunes the service. Zero values select defaults.
type Config struct {
	// MaxRecommendations cuts each category below the hard limit of
	// models.MaxRecommendationsPerCategory.
	MaxRecommendations int

	// FilterConcurrency bounds parallel category queries. 0 runs every
	// category at once.
	FilterConcurrency int

	// MaxDescriptionLength bounds each summary description, in runes.
	MaxDescriptionLength int

	// OracleAttempts is 1 (no retry) or 2.
	OracleAttempts int
}

// ConfigFrom maps the process configuration onto Config.
func ConfigFrom(rc config.RecommendConfig, oc config.OracleConfig) Config {
	return Config{
		MaxRecommendations:   rc.MaxRecommendations,
		FilterConcurrency:    rc.FilterConcurrency,
		MaxDescriptionLength: rc.MaxDescriptionLength,
		OracleAttempts:       oc.MaxAttempts,
	}
}

func (c Config) withDefaults() Config {
	if c.MaxRecommendations <= 0 || c.MaxRecommendations > models.MaxRecommendationsPerCategory {
		c.MaxRecommendations = models.MaxRecommendationsPerCategory
	}
	if c.MaxDescriptionLength <= 0 {
		c.MaxDescriptionLength = DefaultMaxDescriptionLength
	}
	if c.OracleAttempts <= 0 || c.OracleAttempts > maxOracleAttempts {
		c.OracleAttempts = maxOracleAttempts
	}
	if c.FilterConcurrency < 0 {
		c.FilterConcurrency = 0
	}
	return c
}

// Service orchestrates one recommendation request end to end. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	events  store.EventStore
	filter  CandidateFilter
	locator geocode.Locator
	ranker  oracle.Ranker
	cfg     Config
	now     func() time.Time
}

// NewService wires the pipeline. locator may be nil, which disables the
// radius restriction.
func NewService(events store.EventStore, filter CandidateFilter, locator geocode.Locator, ranker oracle.Ranker, cfg Config) *Service {
	return &Service{
		events:  events,
		filter:  filter,
		locator: locator,
		ranker:  ranker,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
	}
}

// categoryOutcome is one category's filter result.
type categoryOutcome struct {
	category   models.Category
	candidates []models.VendorCandidate
	err        error
	attempted  bool
}

// GetRecommendations returns up to three ranked vendors for every category
// the event needs. See the package documentation for the outcomes.
func (s *Service) GetRecommendations(ctx context.Context, eventID string) (result *models.RecommendationResult, err error) {
	start := time.Now()
	ctx, span := otel.Tracer("recommend").Start(ctx, "GetRecommendations",
		trace.WithAttributes(attribute.String("event.id", eventID)))
	log := logging.Ctx(ctx).With().Str("component", "recommend").Str("event_id", eventID).Logger()

	outcome := metrics.OutcomeError
	defer func() {
		metrics.RecordRecommendation(outcome, time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		} else {
			span.SetStatus(codes.Ok, outcome)
		}
		span.End()
	}()

	event, err := s.events.GetEvent(ctx, eventID)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		outcome = metrics.OutcomeCanceled
		return nil, ctx.Err()
	case errors.Is(err, store.ErrNotFound):
		outcome = metrics.OutcomeNotFound
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	default:
		return nil, fmt.Errorf("load event %s: %w", eventID, err)
	}

	categories := models.UniqueCategories(event.Categories)
	result = &models.RecommendationResult{
		EventID:    event.ID,
		Categories: make(map[models.Category]models.CategoryRecommendations, len(categories)),
	}
	for _, c := range categories {
		result.Categories[c] = models.CategoryRecommendations{}
	}
	span.SetAttributes(attribute.Int("event.categories", len(categories)))

	if len(categories) == 0 {
		outcome = metrics.OutcomeEmpty
		result.GeneratedAt = s.now().UTC()
		log.Info().Msg("Event needs no vendor categories")
		return result, nil
	}

	geo := s.locate(ctx, event)
	if ctx.Err() != nil {
		outcome = metrics.OutcomeCanceled
		return nil, ctx.Err()
	}
	result.GeoFiltered = geo != nil

	outcomes := s.filterAll(ctx, event, categories, geo)
	if ctx.Err() != nil {
		outcome = metrics.OutcomeCanceled
		return nil, ctx.Err()
	}

	candidates := make(map[models.Category][]models.VendorCandidate, len(categories))
	summaries := make(map[models.Category][]models.CandidateSummary, len(categories))
	attempted, failed, total := 0, 0, 0
	for _, o := range outcomes {
		if o.attempted {
			attempted++
		}
		if o.err != nil {
			failed++
			result.UnavailableCategories = append(result.UnavailableCategories, o.category)
			metrics.RecordCategoryFailure(string(o.category))
			log.Warn().Err(o.err).Str("category", string(o.category)).
				Msg("Vendor lookup failed, category treated as having no candidates")
			continue
		}
		metrics.ObserveCandidates(len(o.candidates))
		if len(o.candidates) == 0 {
			continue
		}
		total += len(o.candidates)
		candidates[o.category] = o.candidates
		list := make([]models.CandidateSummary, 0, len(o.candidates))
		for _, c := range o.candidates {
			list = append(list, Summarize(c, s.cfg.MaxDescriptionLength))
		}
		summaries[o.category] = list
	}

	if attempted > 0 && failed == attempted {
		outcome = metrics.OutcomeStoreFailure
		log.Error().Int("categories", attempted).Msg("Every vendor lookup failed")
		return nil, ErrTotalStoreFailure
	}

	span.SetAttributes(attribute.Int("candidates.total", total))
	if total == 0 {
		outcome = metrics.OutcomeNoCandidates
		result.NoCandidates = true
		result.GeneratedAt = s.now().UTC()
		log.Info().Bool("geo_filtered", result.GeoFiltered).Msg("No eligible vendors for any category")
		return result, nil
	}

	ranking, err := s.rank(ctx, s.eventContext(event, geo, categories), summaries)
	if err != nil {
		if ctx.Err() != nil {
			outcome = metrics.OutcomeCanceled
			return nil, ctx.Err()
		}
		outcome = metrics.OutcomeOracleError
		return nil, fmt.Errorf("rank candidates: %w", err)
	}

	for cat, list := range candidates {
		recs := Assemble(cat, list, ranking[cat])
		if len(recs) > s.cfg.MaxRecommendations {
			recs = recs[:s.cfg.MaxRecommendations]
		}
		result.Categories[cat] = recs
	}
	result.GeneratedAt = s.now().UTC()

	outcome = metrics.OutcomeSuccess
	if result.Empty() {
		outcome = metrics.OutcomeEmpty
	}
	log.Info().
		Int("candidates", total).
		Int("unavailable_categories", len(result.UnavailableCategories)).
		Bool("geo_filtered", result.GeoFiltered).
		Dur("took", time.Since(start)).
		Msg("Recommendations generated")
	return result, nil
}

// locate resolves the event location once. Failures disable the radius
// restriction and are handled inside the locator.
func (s *Service) locate(ctx context.Context, event *models.Event) *models.GeoPoint {
	if s.locator == nil || !event.HasLocation() {
		return nil
	}
	return s.locator.Geocode(ctx, event.Location)
}

// filterAll runs the per-category filters in parallel and returns their
// outcomes in category order.
func (s *Service) filterAll(ctx context.Context, event *models.Event, categories []models.Category, geo *models.GeoPoint) []categoryOutcome {
	outcomes := make([]categoryOutcome, len(categories))

	limit := s.cfg.FilterConcurrency
	if limit == 0 || limit > len(categories) {
		limit = len(categories)
	}
	sem := make(chan struct{}, limit)

	var wg sync.WaitGroup
	for i, cat := range categories {
		outcomes[i].category = cat
		if !cat.Valid() {
			continue
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return outcomes
		}

		wg.Add(1)
		go func(o *categoryOutcome) {
			defer wg.Done()
			defer func() { <-sem }()

			list, err := s.filter.FilterCandidates(ctx, o.category, event, geo)
			if ctx.Err() != nil {
				return
			}
			o.attempted = true
			o.candidates, o.err = list, err
		}(&outcomes[i])
	}
	wg.Wait()
	return outcomes
}

// rank calls the oracle, retrying once when it was unavailable.
func (s *Service) rank(ctx context.Context, event oracle.EventContext, summaries map[models.Category][]models.CandidateSummary) (oracle.Ranking, error) {
	var err error
	for attempt := 1; attempt <= s.cfg.OracleAttempts; attempt++ {
		var ranking oracle.Ranking
		ranking, err = s.ranker.Rank(ctx, event, summaries)
		if err == nil {
			return ranking, nil
		}
		if ctx.Err() != nil || !oracle.IsRetryable(err) {
			return nil, err
		}
		if attempt < s.cfg.OracleAttempts {
			logging.Ctx(ctx).Warn().Err(err).Int("attempt", attempt).Msg("Ranking oracle unavailable, retrying")
		}
	}
	return nil, err
}

// eventContext renders the event for the oracle. The location prefers the
// geocoder's resolved label over the raw text.
func (s *Service) eventContext(event *models.Event, geo *models.GeoPoint, categories []models.Category) oracle.EventContext {
	location := strings.TrimSpace(event.Location)
	if geo != nil && geo.DisplayName != "" {
		location = geo.DisplayName
	}
	if location == "" {
		location = oracle.NotSpecified
	}

	budget := oracle.NotSpecified
	if event.HasBudget() {
		budget = dollars(*event.Budget)
	}

	return oracle.EventContext{
		Date:       event.EventDate.Format(models.DateLayout),
		Location:   location,
		Budget:     budget,
		Categories: categories,
	}
}
