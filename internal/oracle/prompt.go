// Arangetram Planning - Vendor Recommendation Service
// Copyright 2026 Sreshta Talluri
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sreshtalluri/arangetaram-planning

package oracle

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sreshtalluri/arangetaram-planning-sub000/internal/models"
)

// NotSpecified fills event fields the family left blank.
const NotSpecified = "Not specified"

// EventContext is the event as presented to the oracle.
type EventContext struct {
	Date       string            `json:"date"`
	Location   string            `json:"location"`
	Budget     string            `json:"budget"`
	Categories []models.Category `json:"categories_needed"`
}

// systemPrompt fixes the ranking priorities and the output contract.
const systemPrompt = `You rank vendors for an Arangetram, the debut solo recital of a Bharatanatyam or Kuchipudi dancer. Families plan these events months ahead and depend on vendors who understand classical Indian dance.

For every category in the input, choose the best vendors from the candidates supplied for that category. Judge them in this order of priority:
1. Date availability. Every candidate is already confirmed free on the event date.
2. Budget fit. A price within 20% of the family's budget is acceptable. If you recommend a vendor whose price deviates further, say so in the explanation.
3. Service area. Prefer vendors who serve the event location.
4. Specialization. Prefer vendors with Arangetram, Bharatanatyam or classical dance experience.
5. Reputation, as evidenced in the description.
6. Portfolio quality, as evidenced in the description.

Respond with a single JSON object and nothing else. Each key is a category name from the input. Each value is an array of exactly 3 objects, ordered best first, or fewer only when fewer candidates were supplied for that category:
{"<category>": [{"vendor_id": "<id from the candidates>", "explanation": "<one or two sentences>"}]}

Only use vendor_id values that appear in the candidates for that category. Each explanation must name something concrete about this event, such as its date, budget, location or the dance form, and why this vendor fits it. Do not write generic praise.`

type promptPayload struct {
	Event      EventContext                                  `json:"event"`
	Candidates map[models.Category][]models.CandidateSummary `json:"candidates"`
}

// BuildPrompt returns the system and user messages for one ranking call.
// Only categories with candidates are included.
func BuildPrompt(event EventContext, candidates map[models.Category][]models.CandidateSummary) (system, user string, err error) {
	nonEmpty := make(map[models.Category][]models.CandidateSummary, len(candidates))
	for cat, list := range candidates {
		if len(list) > 0 {
			nonEmpty[cat] = list
		}
	}
	if len(nonEmpty) == 0 {
		return "", "", fmt.Errorf("no candidates to rank")
	}

	data, err := json.MarshalIndent(promptPayload{Event: event, Candidates: nonEmpty}, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshal prompt payload: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Rank the candidates for this event. Categories to rank: ")
	sb.WriteString(strings.Join(categoryNames(nonEmpty), ", "))
	sb.WriteString(".\n\n")
	sb.Write(data)
	return systemPrompt, sb.String(), nil
}

// categoryNames lists keys in the canonical category order.
func categoryNames(m map[models.Category][]models.CandidateSummary) []string {
	names := make([]string, 0, len(m))
	for _, c := range models.AllCategories {
		if _, ok := m[c]; ok {
			names = append(names, string(c))
		}
	}
	return names
}
