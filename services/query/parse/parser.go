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
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/MarketLens/services/query/lexicon"
	"github.com/AleutianAI/MarketLens/services/query/match"
)

var tracer = otel.Tracer("marketlens.query.parse")

// =============================================================================
// Parse Result Types
// =============================================================================

// Correction records one fuzzy or typo correction applied to the query.
type Correction struct {
	Original   string  `json:"original"`
	Corrected  string  `json:"corrected"`
	Confidence float64 `json:"confidence"`
}

// CategoryMatch is one phrase-bank bucket matched by the query.
type CategoryMatch struct {
	Name           string   `json:"name"`
	Intent         string   `json:"intent"`
	Score          float64  `json:"score"`
	MatchedPhrases []string `json:"matched_phrases,omitempty"`
	Cards          []string `json:"cards"`
}

// Modifier is one contextual qualifier extracted from the query.
type Modifier struct {
	Type  string `json:"type"` // time, sentiment, comparison
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

// ParsedQuery is the full parse result. Fully derived, no hidden state.
type ParsedQuery struct {
	Original        string           `json:"original"`
	Corrected       string           `json:"corrected"`
	Corrections     []Correction     `json:"corrections,omitempty"`
	Categories      []CategoryMatch  `json:"categories,omitempty"`
	SuggestedCards  []string         `json:"suggested_cards,omitempty"`
	PrimaryIntent   string           `json:"primary_intent,omitempty"`
	ScreenerFilters []ScreenerFilter `json:"screener_filters,omitempty"`
	Modifiers       []Modifier       `json:"modifiers,omitempty"`
	Sentiment       string           `json:"sentiment,omitempty"`
	Symbols         []string         `json:"symbols,omitempty"`
	Timeframe       string           `json:"timeframe,omitempty"`
}

// maxFuzzyDistance is the edit budget for per-word fuzzy correction.
const maxFuzzyDistance = 2

// symbolRE matches ticker-shaped all-caps tokens in the raw query.
var symbolRE = regexp.MustCompile(`\b[A-Z]{2,10}\b`)

// =============================================================================
// Query Parsing
// =============================================================================

// Query parses free text into the full structured result.
//
// Description:
//
//	Builds its own corrected string (typo table, then per-word fuzzy
//	correction) rather than reusing NormalizeQuery; the two paths are
//	deliberately independent. Then extracts phrase-bank categories,
//	screener filters, modifiers, sentiment, ticker symbols, and a
//	timeframe from the corrected text. Total over any input: a query that
//	matches nothing yields a result with empty collections.
//
// Inputs:
//
//	ctx - Context for tracing only; the parse itself never blocks.
//	query - Raw user text.
//
// Outputs:
//
//	ParsedQuery - The structured result. Never an error.
//
// Thread Safety: Pure function over immutable tables.
func Query(ctx context.Context, query string) ParsedQuery {
	start := time.Now()
	_, span := tracer.Start(ctx, "parse.Query")
	defer span.End()
	span.SetAttributes(attribute.Int("query.length", len(query)))

	corrected, corrections := correctQuery(query)
	categories := matchCategories(corrected)

	result := ParsedQuery{
		Original:        query,
		Corrected:       corrected,
		Corrections:     corrections,
		Categories:      categories,
		SuggestedCards:  suggestedCards(categories),
		PrimaryIntent:   primaryIntent(query, categories),
		ScreenerFilters: ExtractFilters(corrected),
		Symbols:         extractSymbols(query),
	}
	result.Modifiers, result.Sentiment, result.Timeframe = extractModifiers(corrected)

	span.SetAttributes(
		attribute.Int("corrections", len(corrections)),
		attribute.Int("filters", len(result.ScreenerFilters)),
		attribute.String("intent", result.PrimaryIntent),
	)
	parseDuration.Observe(time.Since(start).Seconds())
	return result
}

// correctQuery applies the typo table as substring replacements, then fuzzy
// corrects each remaining word longer than three characters that is not in
// the vocabulary. Confidence is 1 - distance/max(len(word), len(match)).
func correctQuery(query string) (string, []Correction) {
	text := collapseWhitespace(strings.ToLower(strings.TrimSpace(query)))

	for _, typo := range lexicon.TypoCorrections() {
		if strings.Contains(text, typo.From) {
			text = strings.ReplaceAll(text, typo.From, typo.To)
		}
	}

	vocab := lexicon.Vocabulary()
	words := strings.Fields(text)
	var corrections []Correction
	for i, word := range words {
		if len(word) <= 3 || vocab.Contains(word) || strings.ContainsAny(word, "0123456789") {
			continue
		}
		closest, found := match.FindClosestMatch(word, vocab.Words(), maxFuzzyDistance)
		if !found || closest == word {
			continue
		}
		dist := match.Distance(word, closest)
		denom := len(word)
		if len(closest) > denom {
			denom = len(closest)
		}
		corrections = append(corrections, Correction{
			Original:   word,
			Corrected:  closest,
			Confidence: 1 - float64(dist)/float64(denom),
		})
		words[i] = closest
	}
	if len(corrections) > 0 {
		correctionsTotal.Add(float64(len(corrections)))
	}

	return strings.Join(words, " "), corrections
}

// matchCategories scores every phrase-bank bucket by phrase overlap with the
// corrected query, using the same shape of formula as cluster detection.
func matchCategories(corrected string) []CategoryMatch {
	var out []CategoryMatch
	for _, pm := range lexicon.PhraseMappings {
		var matched []string
		for _, phrase := range pm.Phrases {
			if strings.Contains(corrected, phrase) {
				matched = append(matched, phrase)
			}
		}
		if len(matched) == 0 {
			continue
		}
		ratio := float64(len(matched)) / float64(len(pm.Phrases))
		score := ratio*2 + float64(4-pm.Priority)*0.1
		if score > clusterConfidenceCap {
			score = clusterConfidenceCap
		}
		out = append(out, CategoryMatch{
			Name:           pm.Name,
			Intent:         pm.Intent,
			Score:          score,
			MatchedPhrases: matched,
			Cards:          pm.Cards,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// suggestedCards unions the category card lists in rank order, deduplicated.
func suggestedCards(categories []CategoryMatch) []string {
	seen := make(map[string]bool)
	var cards []string
	for _, c := range categories {
		for _, id := range c.Cards {
			if !seen[id] {
				seen[id] = true
				cards = append(cards, id)
			}
		}
	}
	return cards
}

// primaryIntent prefers a structural intent over phrase-bank categories.
func primaryIntent(query string, categories []CategoryMatch) string {
	if intents := DetectIntent(query); len(intents) > 0 && intents[0].Confidence >= patternConfidence {
		return intents[0].Cluster
	}
	if len(categories) > 0 {
		return categories[0].Intent
	}
	return ""
}

// extractModifiers pulls time, sentiment, and comparison qualifiers out of
// the corrected query. The first matching phrase in each ordered list wins
// for the scalar sentiment and timeframe fields.
func extractModifiers(corrected string) ([]Modifier, string, string) {
	var modifiers []Modifier
	sentiment := ""
	timeframe := ""

	for _, tp := range lexicon.TimePhrases {
		if strings.Contains(corrected, tp.Phrase) {
			modifiers = append(modifiers, Modifier{Type: "time", Value: tp.Canonical, Raw: tp.Phrase})
			if timeframe == "" {
				timeframe = tp.Canonical
			}
		}
	}

	sentimentLists := []struct {
		label   string
		phrases []string
	}{
		{"bullish", lexicon.BullishPhrases},
		{"bearish", lexicon.BearishPhrases},
		{"neutral", lexicon.NeutralPhrases},
	}
	for _, sl := range sentimentLists {
		for _, phrase := range sl.phrases {
			if strings.Contains(corrected, phrase) {
				modifiers = append(modifiers, Modifier{Type: "sentiment", Value: sl.label, Raw: phrase})
				if sentiment == "" {
					sentiment = sl.label
				}
				break
			}
		}
	}

	for _, phrase := range lexicon.ComparisonPhrases {
		if containsWord(corrected, phrase) {
			modifiers = append(modifiers, Modifier{Type: "comparison", Value: "compare", Raw: phrase})
			break
		}
	}

	return modifiers, sentiment, timeframe
}

// containsWord checks phrase presence on word boundaries; "vs" must not hit
// inside "investments".
func containsWord(text, phrase string) bool {
	idx := strings.Index(text, phrase)
	for idx >= 0 {
		before := idx == 0 || text[idx-1] == ' '
		end := idx + len(phrase)
		after := end == len(text) || text[end] == ' '
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], phrase)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

// extractSymbols finds ticker-shaped tokens in the raw (pre-lowercase)
// query, minus the finance-acronym stoplist.
func extractSymbols(query string) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, tok := range symbolRE.FindAllString(query, -1) {
		if lexicon.SymbolStoplist[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		symbols = append(symbols, tok)
	}
	return symbols
}
