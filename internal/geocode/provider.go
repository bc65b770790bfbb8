// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package geocode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/config"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// Provider resolves free-text locations to coordinates.
type Provider interface {
	// Lookup returns (nil, nil) when the service answered but found no match.
	Lookup(ctx context.Context, text string) (*models.GeoPoint, error)

	// Name returns the provider name for logging and metrics.
	Name() string
}

// NominatimProvider queries a Nominatim-compatible search endpoint. Hosted
// LocationIQ and self-hosted Nominatim both speak this API; the key is only
// sent when configured.
type NominatimProvider struct {
	client       *http.Client
	baseURL      string
	apiKey       string
	userAgent    string
	countryCodes string
}

// nominatimResult is one element of the jsonv2 search response.
// Coordinates are encoded as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimProvider creates a provider from configuration.
func NewNominatimProvider(cfg config.GeocoderConfig) *NominatimProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NominatimProvider{
		client:       &http.Client{Timeout: timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		userAgent:    cfg.UserAgent,
		countryCodes: cfg.CountryCodes,
	}
}

// Name implements Provider.
func (p *NominatimProvider) Name() string {
	return "nominatim"
}

// Lookup implements Provider.
func (p *NominatimProvider) Lookup(ctx context.Context, text string) (*models.GeoPoint, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	if p.countryCodes != "" {
		params.Set("countrycodes", p.countryCodes)
	}
	if p.apiKey != "" {
		params.Set("key", p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/search?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query geocoder: %w", err)
	}
	defer resp.Body.Close()

	// LocationIQ answers 404 with an error body for "Unable to geocode".
	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	return convertResult(results[0])
}

func convertResult(r nominatimResult) (*models.GeoPoint, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", r.Lat, err)
	}
	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", r.Lon, err)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("coordinates out of range: %f, %f", lat, lng)
	}
	return &models.GeoPoint{Lat: lat, Lng: lng, DisplayName: r.DisplayName}, nil
}
