// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package parse turns free-text trader queries into structured parse
// results: corrected text, intent matches, screener filters, modifiers,
// sentiment, symbols, and timeframe.
package parse

import (
	"strings"

	"github.com/AleutianAI/MarketLens/services/query/lexicon"
)

// NormalizeQuery canonicalizes a query for lexical matching.
//
// Description:
//
//	Lowercases, trims, collapses whitespace runs, then applies the synonym
//	table in order. Each rule rewrites whole-word occurrences once; the
//	table is walked a single time top to bottom, so text produced by an
//	earlier rule is never itself re-substituted. Running the function twice
//	on canonical text is a no-op because synonym targets are never keys.
//
// Inputs:
//
//	query - Raw user text.
//
// Outputs:
//
//	string - The normalized query.
//
// Thread Safety: Pure function over immutable tables.
func NormalizeQuery(query string) string {
	q := collapseWhitespace(strings.ToLower(strings.TrimSpace(query)))
	for _, rule := range lexicon.SynonymRules() {
		q = rule.Pattern.ReplaceAllString(q, rule.To)
	}
	return q
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
