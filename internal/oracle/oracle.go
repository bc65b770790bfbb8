// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

// Package oracle ranks eligible vendors with a language model. The model is
// treated as an opaque scoring service: one batched JSON-mode call per
// request, output validated for shape and nothing else.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/breaker"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/logging"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/metrics"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// Ranker is the contract consumed by the recommendation service.
type Ranker interface {
	Rank(ctx context.Context, event EventContext, candidates map[models.Category][]models.CandidateSummary) (Ranking, error)
}

// Provider performs one JSON-mode completion. Implementations return
// *Error values for provider failures and the context error on
// cancellation.
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Name() string
}

// Oracle adds prompting, parsing, a per-attempt timeout and a circuit
// breaker around a Provider. It makes exactly one provider call per Rank.
type Oracle struct {
	provider Provider
	timeout  time.Duration
	cb       *gobreaker.CircuitBreaker[string]
}

// New wraps provider. cfg.Timeout bounds each call.
func New(provider Provider, cfg config.OracleConfig) *Oracle {
	s := breaker.DefaultSettings()
	s.IsSuccessful = func(err error) bool {
		// Only outages count against the provider.
		return !errors.Is(err, ErrUnavailable)
	}
	return &Oracle{
		provider: provider,
		timeout:  cfg.Timeout,
		cb:       breaker.New[string]("oracle-"+provider.Name(), s),
	}
}

// NewProvider builds the configured provider.
func NewProvider(ctx context.Context, cfg config.OracleConfig) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAIProvider(cfg), nil
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.Provider)
	}
}

// Rank implements Ranker.
func (o *Oracle) Rank(ctx context.Context, event EventContext, candidates map[models.Category][]models.CandidateSummary) (Ranking, error) {
	ctx, span := otel.Tracer("oracle").Start(ctx, "Rank", trace.WithAttributes(
		attribute.String("oracle.provider", o.provider.Name()),
		attribute.Int("oracle.categories", len(candidates)),
	))
	defer span.End()

	system, user, err := BuildPrompt(event, candidates)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("prompt.length", len(user)))

	start := time.Now()
	raw, err := o.complete(ctx, system, user)
	if err != nil {
		o.record(ctx, span, start, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("response.length", len(raw)))

	ranking, err := ParseRanking(raw, categoriesOf(candidates))
	if err != nil {
		err = malformed(o.provider.Name(), err)
		o.record(ctx, span, start, err)
		return nil, err
	}

	o.record(ctx, span, start, nil)
	return ranking, nil
}

func (o *Oracle) complete(parent context.Context, system, user string) (string, error) {
	ctx := parent
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, o.timeout)
		defer cancel()
	}

	raw, err := o.cb.Execute(func() (string, error) {
		raw, err := o.provider.Complete(ctx, system, user)
		if err != nil && parent.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			// The attempt timeout fired, not the caller's deadline.
			return "", unavailable(o.provider.Name(), 0, fmt.Errorf("timed out after %s", o.timeout))
		}
		return raw, err
	})
	switch {
	case err == nil:
		return raw, nil
	case parent.Err() != nil:
		return "", parent.Err()
	case breaker.IsRejection(err):
		return "", unavailable(o.provider.Name(), 0, err)
	case errors.Is(err, context.DeadlineExceeded):
		return "", unavailable(o.provider.Name(), 0, fmt.Errorf("timed out after %s", o.timeout))
	case errors.Is(err, ErrUnavailable), errors.Is(err, ErrMalformedResponse):
		return "", err
	default:
		return "", unavailable(o.provider.Name(), 0, err)
	}
}

func (o *Oracle) record(ctx context.Context, span trace.Span, start time.Time, err error) {
	outcome := "success"
	switch {
	case err == nil:
	case errors.Is(err, ErrMalformedResponse):
		outcome = "malformed"
	case errors.Is(err, ErrUnavailable):
		outcome = "unavailable"
	default:
		outcome = "canceled"
	}
	metrics.RecordOracleRequest(o.provider.Name(), outcome, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		logging.Ctx(ctx).Warn().Err(err).
			Str("provider", o.provider.Name()).
			Str("outcome", outcome).
			Dur("took", time.Since(start)).
			Msg("Ranking oracle call failed")
		return
	}
	span.SetStatus(codes.Ok, "ranked")
}

func categoriesOf(m map[models.Category][]models.CandidateSummary) []models.Category {
	out := make([]models.Category, 0, len(m))
	for c, list := range m {
		if len(list) > 0 {
			out = append(out, c)
		}
	}
	return out
}
