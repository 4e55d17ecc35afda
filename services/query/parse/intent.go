// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package parse

import (
	"sort"
	"strings"

	"github.com/AleutianAI/MarketLens/services/query/lexicon"
)

// =============================================================================
// Intent Detection
// =============================================================================

// patternConfidence is the fixed confidence for structural pattern hits.
// Higher than the 0.9 cluster cap: a structural match outranks any
// bag-of-terms match.
const patternConfidence = 0.95

// clusterConfidenceCap bounds term-overlap confidences.
const clusterConfidenceCap = 0.9

// DetectedIntent is one intent signal with the cards it routes to.
type DetectedIntent struct {
	Cluster      string   `json:"cluster"`
	Confidence   float64  `json:"confidence"`
	Tools        []string `json:"tools"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

// DetectIntent ranks intent signals for a query.
//
// Description:
//
//	Two stages. Structural regex patterns run against the raw query first;
//	every hit is emitted at a fixed 0.95 with the pattern's tool list
//	verbatim. Then each intent cluster is scored by term overlap against
//	the normalized query: confidence = min(0.9, ratio*2 + (4-priority)*0.1)
//	where ratio is matched terms over total cluster terms. The result is
//	stably sorted by confidence descending, so equal-confidence entries
//	keep table order.
//
// Inputs:
//
//	query - Raw user text. Normalization happens internally for the
//	        cluster stage only.
//
// Outputs:
//
//	[]DetectedIntent - Ranked signals. Empty when nothing matches.
//
// Thread Safety: Pure function over immutable tables.
func DetectIntent(query string) []DetectedIntent {
	var out []DetectedIntent

	for _, p := range lexicon.QueryPatterns {
		if p.Pattern.MatchString(query) {
			out = append(out, DetectedIntent{
				Cluster:    p.Name,
				Confidence: patternConfidence,
				Tools:      p.Tools,
			})
			intentMatchesTotal.WithLabelValues("pattern").Inc()
		}
	}

	normalized := NormalizeQuery(query)
	for _, c := range lexicon.Clusters {
		var matched []string
		for _, term := range c.Terms {
			if strings.Contains(normalized, term) {
				matched = append(matched, term)
			}
		}
		if len(matched) == 0 {
			continue
		}
		ratio := float64(len(matched)) / float64(len(c.Terms))
		confidence := ratio*2 + float64(4-c.Priority)*0.1
		if confidence > clusterConfidenceCap {
			confidence = clusterConfidenceCap
		}
		out = append(out, DetectedIntent{
			Cluster:      c.Name,
			Confidence:   confidence,
			Tools:        c.Tools,
			MatchedTerms: matched,
		})
		intentMatchesTotal.WithLabelValues("cluster").Inc()
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// =============================================================================
// Tool Recommendation
// =============================================================================

// ToolScore is one recommended card id with its aggregate confidence.
type ToolScore struct {
	Tool  string  `json:"tool"`
	Score float64 `json:"score"`
}

// RecommendTools aggregates intent confidences per card id.
//
// Description:
//
//	Sums the confidence of every detected intent that names a tool, clamps
//	each tool at 1.0, and returns the tools sorted by score descending.
//	Ties keep first-encountered order, which is detection order (strongest
//	intent first), so a pattern-backed tool beats a cluster-only tool at
//	equal clamped scores.
//
// Inputs:
//
//	query - Raw user text.
//	maxResults - Cap on returned tools; <=0 means 20.
//
// Outputs:
//
//	[]ToolScore - Ranked card ids. Empty when no intent matches.
func RecommendTools(query string, maxResults int) []ToolScore {
	if maxResults <= 0 {
		maxResults = 20
	}

	scores := make(map[string]float64)
	var order []string
	for _, intent := range DetectIntent(query) {
		for _, tool := range intent.Tools {
			if _, seen := scores[tool]; !seen {
				order = append(order, tool)
			}
			scores[tool] += intent.Confidence
		}
	}

	out := make([]ToolScore, 0, len(order))
	for _, tool := range order {
		s := scores[tool]
		if s > 1.0 {
			s = 1.0
		}
		out = append(out, ToolScore{Tool: tool, Score: s})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}
