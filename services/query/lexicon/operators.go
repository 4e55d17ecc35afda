// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package lexicon holds the static language tables the query engine matches
// against: comparison operators, screenable metrics, synonym and typo rules,
// intent clusters, phrase mappings, structural query patterns, and modifier
// phrase lists. All tables are constructed at load time and never mutated,
// so every exported accessor is safe for concurrent use.
package lexicon

import "strings"

// =============================================================================
// Comparison Operators
// =============================================================================

// Operator is a canonical comparison operator plus every natural-language
// phrasing that means it.
//
// Thread Safety: Immutable after package initialization.
type Operator struct {
	// Symbol is the canonical operator used downstream (">", "<=", "between", ...).
	Symbol string

	// Aliases are natural-language phrasings resolved to Symbol.
	Aliases []string

	// Description is consumer-facing copy for builder UIs.
	Description string
}

// Operators is the ordered operator table. Order matters: alias resolution
// scans top to bottom and extraction prefers longer alias phrases first.
var Operators = []Operator{
	{
		Symbol:      ">",
		Aliases:     []string{"greater than", "more than", "above", "over", "exceeds", "higher than", "gt"},
		Description: "strictly greater than the value",
	},
	{
		Symbol:      "<",
		Aliases:     []string{"less than", "below", "under", "lower than", "smaller than", "fewer than", "lt"},
		Description: "strictly less than the value",
	},
	{
		Symbol:      ">=",
		Aliases:     []string{"greater than or equal to", "at least", "not less than", "minimum of", "minimum", "gte"},
		Description: "greater than or equal to the value",
	},
	{
		Symbol:      "<=",
		Aliases:     []string{"less than or equal to", "at most", "not more than", "maximum of", "maximum", "up to", "lte"},
		Description: "less than or equal to the value",
	},
	{
		Symbol:      "=",
		Aliases:     []string{"equal to", "equals", "exactly"},
		Description: "equal to the value",
	},
	{
		Symbol:      "!=",
		Aliases:     []string{"not equal to", "not equals", "other than", "excluding"},
		Description: "not equal to the value",
	},
	{
		Symbol:      "between",
		Aliases:     []string{"between", "in the range", "ranging from"},
		Description: "within an inclusive range",
	},
	{
		Symbol:      "in",
		Aliases:     []string{"within", "among", "one of"},
		Description: "member of a value set",
	},
	{
		Symbol:      "top",
		Aliases:     []string{"top", "best", "highest", "leading"},
		Description: "highest N by the metric",
	},
	{
		Symbol:      "bottom",
		Aliases:     []string{"bottom", "worst", "lowest", "weakest"},
		Description: "lowest N by the metric",
	},
}

// operatorSymbols is the set of canonical symbols for O(1) membership checks.
var operatorSymbols = func() map[string]bool {
	set := make(map[string]bool, len(Operators))
	for _, op := range Operators {
		set[op.Symbol] = true
	}
	return set
}()

// IsOperatorSymbol reports whether s is a canonical operator symbol.
func IsOperatorSymbol(s string) bool {
	return operatorSymbols[s]
}

// OperatorForAlias resolves a natural-language phrase to its canonical
// operator symbol.
//
// Description:
//
//	Matches canonical symbols directly, then scans the alias lists in table
//	order for an exact (case-insensitive, trimmed) match. Unresolvable text
//	returns ("", false); callers decide whether to pass the raw text through
//	or drop the clause.
//
// Inputs:
//
//	text - The candidate operator phrase.
//
// Outputs:
//
//	string - The canonical symbol, or "" when no alias matches.
//	bool - True on a match.
func OperatorForAlias(text string) (string, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", false
	}
	if operatorSymbols[text] {
		return text, true
	}
	for _, op := range Operators {
		for _, alias := range op.Aliases {
			if text == alias {
				return op.Symbol, true
			}
		}
	}
	return "", false
}

// MaxOperatorAliasWords is the longest alias phrase length in words. The
// extractor uses it to bound its longest-match-first scan.
var MaxOperatorAliasWords = func() int {
	max := 1
	for _, op := range Operators {
		for _, alias := range op.Aliases {
			if n := len(strings.Fields(alias)); n > max {
				max = n
			}
		}
	}
	return max
}()
