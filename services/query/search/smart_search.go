// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search ranks catalog cards against free-text queries. SmartSearch
// blends lexical signals with intent recommendations; QuickSearch is the
// cheap substring path for autocomplete.
package search

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/MarketLens/services/query/catalog"
	"github.com/AleutianAI/MarketLens/services/query/lexicon"
	"github.com/AleutianAI/MarketLens/services/query/parse"
)

var tracer = otel.Tracer("marketlens.query.search")

// =============================================================================
// Engine
// =============================================================================

// Engine ranks cards from a fixed catalog. Stateless per call; safe for
// concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewEngine builds a search engine over the given catalog.
func NewEngine(cat *catalog.Catalog, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{catalog: cat, logger: logger}
}

// Options narrows and sizes a search.
type Options struct {
	// Segment filters cards to those targeting the segment, and boosts them.
	Segment string `json:"segment,omitempty"`

	// Complexity filters to an exact complexity level when set.
	Complexity string `json:"complexity,omitempty"`

	// Category filters to an exact category when set.
	Category string `json:"category,omitempty"`

	// MaxResults caps the result list; <=0 means 10.
	MaxResults int `json:"max_results,omitempty"`
}

// Result is one ranked card.
type Result struct {
	Card         catalog.Card `json:"card"`
	Score        float64      `json:"score"`
	MatchType    string       `json:"match_type"`
	MatchedTerms []string     `json:"matched_terms,omitempty"`
	Explanation  string       `json:"explanation"`
}

// =============================================================================
// Scoring Weights
// =============================================================================

const (
	exactIDScore     = 1.0
	labelScore       = 0.8
	intentWeight     = 0.9
	tagWeight        = 0.7
	synonymWeight    = 0.6
	descriptionScore = 0.3

	fullTagHit    = 0.3
	partialTagHit = 0.15
	synonymHit    = 0.2

	segmentBoost = 1.1
	defaultBoost = 1.05
	edgeBoost    = 1.15
	riskBoost    = 1.15

	minScore          = 0.1
	defaultMaxResults = 10
)

var (
	edgeQueryRE = regexp.MustCompile(`(?i)win.?rate|expectancy|edge|performance`)
	riskQueryRE = regexp.MustCompile(`(?i)position|size|risk|lot|capital`)
)

// =============================================================================
// Smart Search
// =============================================================================

// SmartSearch scores every catalog card against the query.
//
// Description:
//
//	Hard filters (segment, complexity, category) exclude cards outright.
//	Surviving cards accumulate additive signals: exact id, label substring,
//	intent recommendation, tag overlap, synonym overlap, and description
//	substring. Multiplicative boosts follow in fixed order (segment,
//	default, edge relevance, risk relevance), then the score is clamped to
//	1. Cards at or below 0.1 are dropped. MatchType records the first
//	elevating signal and never downgrades afterwards.
//
// Inputs:
//
//	ctx - Context for tracing only.
//	query - Raw user text.
//	opts - Filters and result cap.
//
// Outputs:
//
//	[]Result - Sorted descending by score, truncated to MaxResults.
//
// Thread Safety: Safe for concurrent use.
func (e *Engine) SmartSearch(ctx context.Context, query string, opts Options) []Result {
	start := time.Now()
	_, span := tracer.Start(ctx, "search.SmartSearch")
	defer span.End()

	rawLower := strings.ToLower(strings.TrimSpace(query))
	normalized := parse.NormalizeQuery(query)
	queryTerms := strings.Fields(normalized)
	hyphenated := strings.ReplaceAll(normalized, " ", "-")

	recommended := make(map[string]float64)
	for _, ts := range parse.RecommendTools(query, 20) {
		recommended[ts.Tool] = ts.Score
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	var results []Result
	for _, card := range e.catalog.Cards() {
		if !passesFilters(card, opts) {
			continue
		}

		score := 0.0
		matchType := "fuzzy"
		var matchedTerms []string

		if hyphenated == card.ID {
			score += exactIDScore
			matchType = elevate(matchType, "exact")
			matchedTerms = append(matchedTerms, card.ID)
		}
		if strings.Contains(strings.ToLower(card.Label), normalized) {
			score += labelScore
			matchType = elevate(matchType, "exact")
			matchedTerms = append(matchedTerms, card.Label)
		}

		if rec, ok := recommended[card.ID]; ok {
			score += rec * intentWeight
			matchType = elevate(matchType, "intent")
		}

		if tagScore, tagTerms := scoreTags(card.Tags, normalized, queryTerms); tagScore > 0 {
			score += tagScore * tagWeight
			matchType = elevate(matchType, "tag")
			matchedTerms = append(matchedTerms, tagTerms...)
		}

		if synScore := scoreSynonyms(card.Tags, rawLower); synScore > 0 {
			score += synScore * synonymWeight
			matchType = elevate(matchType, "synonym")
		}

		if card.Description != "" && strings.Contains(strings.ToLower(card.Description), normalized) {
			score += descriptionScore
		}

		if opts.Segment != "" && hasString(card.Segments, opts.Segment) {
			score *= segmentBoost
		}
		if card.Default {
			score *= defaultBoost
		}
		if card.HasEdgeMetric && edgeQueryRE.MatchString(query) {
			score *= edgeBoost
		}
		if card.HasRiskSizing && riskQueryRE.MatchString(query) {
			score *= riskBoost
		}

		if score > 1.0 {
			score = 1.0
		}
		if score <= minScore {
			continue
		}

		results = append(results, Result{
			Card:         card,
			Score:        score,
			MatchType:    matchType,
			MatchedTerms: matchedTerms,
			Explanation:  explain(matchType, matchedTerms, card),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	span.SetAttributes(attribute.Int("results", len(results)))
	searchDuration.Observe(time.Since(start).Seconds())
	searchResults.Observe(float64(len(results)))
	e.logger.Debug("smart search complete",
		slog.String("query", query),
		slog.Int("results", len(results)))
	return results
}

func passesFilters(card catalog.Card, opts Options) bool {
	if opts.Segment != "" && len(card.Segments) > 0 && !hasString(card.Segments, opts.Segment) {
		return false
	}
	if opts.Complexity != "" && card.Complexity != "" && card.Complexity != opts.Complexity {
		return false
	}
	if opts.Category != "" && card.Category != opts.Category {
		return false
	}
	return true
}

// scoreTags gives each tag +0.3 for a full-phrase hit in the normalized
// query, else +0.15 for every query term contained in the tag or containing
// it, so a multi-word tag credits each of its words found in the query. The
// raw score is capped at 1.0 before weighting.
func scoreTags(tags []string, normalized string, queryTerms []string) (float64, []string) {
	score := 0.0
	var matched []string
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)
		if strings.Contains(normalized, tagLower) {
			score += fullTagHit
			matched = append(matched, tag)
			continue
		}
		hits := 0
		for _, term := range queryTerms {
			if strings.Contains(tagLower, term) || strings.Contains(term, tagLower) {
				hits++
			}
		}
		if hits > 0 {
			score += partialTagHit * float64(hits)
			matched = append(matched, tag)
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score, matched
}

// scoreSynonyms checks each synonym whose source phrase appears in the raw
// lowercased query against the card tags: +0.2 when a tag contains the
// canonical phrase (underscores as spaces) or any underscore-split part of
// it. Capped at 1.0 before weighting.
func scoreSynonyms(tags []string, rawLower string) float64 {
	score := 0.0
	for _, rule := range lexicon.SynonymRules() {
		if !strings.Contains(rawLower, rule.From) {
			continue
		}
		canonical := strings.ReplaceAll(rule.To, "_", " ")
		parts := strings.Split(rule.To, "_")
		for _, tag := range tags {
			tagLower := strings.ToLower(tag)
			hit := strings.Contains(tagLower, canonical)
			for _, part := range parts {
				if hit {
					break
				}
				if part != "" && strings.Contains(tagLower, part) {
					hit = true
				}
			}
			if hit {
				score += synonymHit
				break
			}
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// elevate upgrades matchType only while it is still the fuzzy fallback; the
// first elevating signal wins and is never downgraded.
func elevate(current, proposed string) string {
	if current == "fuzzy" {
		return proposed
	}
	return current
}

func hasString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// explain renders the consumer-facing reason for a match.
func explain(matchType string, matchedTerms []string, card catalog.Card) string {
	switch matchType {
	case "exact":
		return "Direct match for " + card.Label
	case "intent":
		return card.Label + " handles what you asked for"
	case "tag":
		if len(matchedTerms) > 0 {
			return "Matches " + strings.Join(matchedTerms, ", ")
		}
		return "Matches related topics"
	case "synonym":
		return "Related to terms in your search"
	default:
		return "Close match for your search"
	}
}

// =============================================================================
// Quick Search
// =============================================================================

// QuickSearch is the low-latency autocomplete path: plain substring match on
// label, id, and tags, no scoring, catalog order.
//
// Inputs:
//
//	query - Raw user text.
//	maxResults - Cap; <=0 means 5.
//
// Outputs:
//
//	[]catalog.Card - Matching cards in catalog order.
func (e *Engine) QuickSearch(query string, maxResults int) []catalog.Card {
	if maxResults <= 0 {
		maxResults = 5
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []catalog.Card
	for _, card := range e.catalog.Cards() {
		if quickMatch(card, q) {
			out = append(out, card)
			if len(out) == maxResults {
				break
			}
		}
	}
	return out
}

func quickMatch(card catalog.Card, q string) bool {
	if strings.Contains(strings.ToLower(card.Label), q) || strings.Contains(card.ID, q) {
		return true
	}
	for _, tag := range card.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
