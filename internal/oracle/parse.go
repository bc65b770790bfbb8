// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package oracle

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/validation"
)

// Ranking maps each category to the oracle's ordered verdicts.
type Ranking map[models.Category][]models.RankedRecommendation

var errNotObject = errors.New("response is not a JSON object")

// ParseRanking validates raw oracle output. Every requested category gets
// an entry (empty when the oracle omitted it). Keys that are not requested
// categories are ignored. Vendor ids are not checked against candidates
// here; the assembler drops unknown ids.
func ParseRanking(raw string, requested []models.Category) (Ranking, error) {
	body := bytes.TrimSpace([]byte(stripCodeFence(raw)))
	if len(body) == 0 || body[0] != '{' {
		return nil, errNotObject
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	ranking := make(Ranking, len(requested))
	for _, cat := range requested {
		ranking[cat] = []models.RankedRecommendation{}

		value, ok := top[string(cat)]
		if !ok || isNull(value) {
			continue
		}
		recs, err := parseCategory(value)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", cat, err)
		}
		ranking[cat] = recs
	}
	return ranking, nil
}

func parseCategory(value json.RawMessage) ([]models.RankedRecommendation, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, fmt.Errorf("expected an array: %w", err)
	}

	recs := make([]models.RankedRecommendation, 0, len(items))
	for i, item := range items {
		var fields map[string]interface{}
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			return nil, fmt.Errorf("item %d is not an object", i)
		}
		id, idOK := fields["vendor_id"].(string)
		explanation, exOK := fields["explanation"].(string)
		if !idOK || !exOK {
			return nil, fmt.Errorf("item %d: vendor_id and explanation must be strings", i)
		}

		rec := models.RankedRecommendation{
			VendorID:    strings.TrimSpace(id),
			Explanation: strings.TrimSpace(explanation),
		}
		if verr := validation.ValidateStruct(&rec); verr != nil {
			return nil, fmt.Errorf("item %d: %s", i, verr.Error())
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// stripCodeFence removes a markdown fence some models wrap JSON in even in
// JSON mode.
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return s
	}
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimPrefix(t, "json")
	return strings.TrimSuffix(strings.TrimSpace(t), "```")
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
