// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"context"
	"strings"
	"testing"

	"github.com/AleutianAI/MarketLens/services/query/catalog"
)

// makeTestEngine builds an engine over the embedded catalog.
func makeTestEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return NewEngine(cat, nil)
}

func TestSmartSearch_ExactIDMatch(t *testing.T) {
	e := makeTestEngine(t)

	results := e.SmartSearch(context.Background(), "option chain", Options{})
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].Card.ID != "option-chain" {
		t.Errorf("top result = %q, want option-chain", results[0].Card.ID)
	}
	if results[0].MatchType != "exact" {
		t.Errorf("match type = %q, want exact", results[0].MatchType)
	}
}

func TestSmartSearch_ScoreBoundsAndOrdering(t *testing.T) {
	e := makeTestEngine(t)

	queries := []string{
		"dividend stocks",
		"calculate position size for 2L capital",
		"option chain",
		"sector rotation today",
	}
	for _, q := range queries {
		results := e.SmartSearch(context.Background(), q, Options{MaxResults: 5})
		if len(results) > 5 {
			t.Errorf("%q: %d results exceed max 5", q, len(results))
		}
		for i, r := range results {
			if r.Score <= 0.1 || r.Score > 1.0 {
				t.Errorf("%q: %s score %.3f out of (0.1, 1]", q, r.Card.ID, r.Score)
			}
			if i > 0 && r.Score > results[i-1].Score {
				t.Errorf("%q: results not sorted at index %d", q, i)
			}
			if r.Explanation == "" {
				t.Errorf("%q: %s has empty explanation", q, r.Card.ID)
			}
		}
	}
}

func TestSmartSearch_RiskAdvisorFirstForSizing(t *testing.T) {
	e := makeTestEngine(t)

	results := e.SmartSearch(context.Background(), "calculate position size for 2L capital", Options{})
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].Card.ID != "fno-risk-advisor" {
		t.Errorf("top result = %q (%.3f), want fno-risk-advisor", results[0].Card.ID, results[0].Score)
	}
}

func TestSmartSearch_HardFilters(t *testing.T) {
	e := makeTestEngine(t)

	results := e.SmartSearch(context.Background(), "dividend stocks", Options{Segment: "fno-trader"})
	for _, r := range results {
		if len(r.Card.Segments) > 0 && !hasString(r.Card.Segments, "fno-trader") {
			t.Errorf("%s does not target fno-trader but passed the segment filter", r.Card.ID)
		}
	}

	results = e.SmartSearch(context.Background(), "option chain analysis", Options{Category: "funds"})
	for _, r := range results {
		if r.Card.Category != "funds" {
			t.Errorf("%s category %q escaped the funds filter", r.Card.ID, r.Card.Category)
		}
	}
}

func TestSmartSearch_EmptyForGibberish(t *testing.T) {
	e := makeTestEngine(t)

	if results := e.SmartSearch(context.Background(), "xjqz vvkw blorp", Options{}); len(results) != 0 {
		t.Errorf("expected no results, got %d (first: %s)", len(results), results[0].Card.ID)
	}
}

func TestQuickSearch_SubstringOnly(t *testing.T) {
	e := makeTestEngine(t)

	cards := e.QuickSearch("option", 5)
	if len(cards) == 0 || len(cards) > 5 {
		t.Fatalf("got %d cards, want 1..5", len(cards))
	}
	for _, card := range cards {
		if !quickMatch(card, "option") {
			t.Errorf("%s returned without a substring hit", card.ID)
		}
	}

	if cards := e.QuickSearch("", 5); cards != nil {
		t.Errorf("empty query returned %d cards", len(cards))
	}
}

func TestRelatedCards_SimilarityAndThreshold(t *testing.T) {
	e := makeTestEngine(t)

	related := e.RelatedCards("option-chain", 0)
	if len(related) == 0 || len(related) > 4 {
		t.Fatalf("got %d related cards, want 1..4", len(related))
	}
	for i, r := range related {
		if r.Score <= 0.2 {
			t.Errorf("%s score %.3f at or below threshold", r.Card.ID, r.Score)
		}
		if i > 0 && r.Score > related[i-1].Score {
			t.Errorf("related cards not sorted at index %d", i)
		}
		if r.Card.ID == "option-chain" {
			t.Error("source card returned as its own relative")
		}
	}
}

func TestScoreTags_PerTermAccumulation(t *testing.T) {
	tests := []struct {
		name       string
		tags       []string
		normalized string
		want       float64
	}{
		// both words of the tag appear as query terms: two partial hits
		{"two terms", []string{"position size"}, "size my position", 0.30},
		// short terms still count
		{"short term", []string{"pe ratio"}, "low pe", 0.15},
		// tag phrase present verbatim in the query: single full hit
		{"full phrase", []string{"position size"}, "position size check", 0.30},
		{"no overlap", []string{"dividends"}, "option chain", 0.0},
	}
	for _, tt := range tests {
		got, _ := scoreTags(tt.tags, tt.normalized, strings.Fields(tt.normalized))
		if got != tt.want {
			t.Errorf("%s: scoreTags(%v, %q) = %.2f, want %.2f",
				tt.name, tt.tags, tt.normalized, got, tt.want)
		}
	}
}

func TestScoreTags_CappedAtOne(t *testing.T) {
	tags := []string{"alpha beta", "gamma delta", "alpha gamma", "beta delta"}
	got, _ := scoreTags(tags, "alpha beta gamma delta", strings.Fields("alpha beta gamma delta"))
	if got != 1.0 {
		t.Errorf("scoreTags = %.2f, want capped at 1.0", got)
	}
}

func TestRelatedCards_UnknownID(t *testing.T) {
	e := makeTestEngine(t)
	if related := e.RelatedCards("does-not-exist", 4); len(related) != 0 {
		t.Errorf("unknown id returned %d related cards", len(related))
	}
}
