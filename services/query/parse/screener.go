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
	"regexp"
	"strconv"
	"strings"

	"github.com/AleutianAI/MarketLens/services/query/lexicon"
)

// =============================================================================
// Screener Filter Extraction
// =============================================================================

// ScreenerFilter is one parsed constraint. Value is float64 for numeric
// clauses and the literal string "high" or "low" for quality-adjective
// clauses; a downstream component resolves those to percentiles.
type ScreenerFilter struct {
	Metric   string `json:"metric"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
	Raw      string `json:"raw"`
}

// maxMetricWords bounds how far back the extractor looks for metric text
// before an operator.
const maxMetricWords = 4

// qualityAdjectives maps adjectives to their wants-high polarity.
var qualityAdjectives = map[string]bool{
	"high":   true,
	"good":   true,
	"strong": true,
	"low":    false,
	"weak":   false,
}

// symbolicOperatorRE spaces out operator symbols glued to their operands
// ("pe<15") so tokenization sees three tokens.
var symbolicOperatorRE = regexp.MustCompile(`([<>!]=?|=)`)

// ExtractFilters pulls every screener constraint out of a corrected query.
//
// Description:
//
//	Two independent passes, both best-effort and total: unparsable
//	fragments are skipped, never an error.
//
//	Numeric pass: for each number token, match the longest operator alias
//	phrase ending right before it, then resolve up to four preceding words
//	(longest suffix first) as metric text by exact id/name/alias equality.
//	An operator-shaped phrase that resolves to no known alias ("cheaper
//	than") is passed through raw so the caller can surface it.
//
//	Quality pass: for each high/low/good/strong/weak adjective, resolve the
//	following words as a metric by substring containment (deliberately
//	looser than the numeric pass). The operator is ">=" when the adjective
//	polarity agrees with the metric's higher-is-better direction, "<="
//	otherwise, and the value is the literal adjective polarity.
//
// Inputs:
//
//	text - Corrected, lowercased query text.
//
// Outputs:
//
//	[]ScreenerFilter - All extracted constraints, in query order per pass.
//
// Thread Safety: Pure function over immutable tables.
func ExtractFilters(text string) []ScreenerFilter {
	tokens := strings.Fields(symbolicOperatorRE.ReplaceAllString(text, " $1 "))

	var filters []ScreenerFilter
	filters = append(filters, extractNumericFilters(tokens)...)
	filters = append(filters, extractQualityFilters(tokens)...)
	if len(filters) > 0 {
		filtersExtractedTotal.Add(float64(len(filters)))
	}
	return filters
}

func extractNumericFilters(tokens []string) []ScreenerFilter {
	var filters []ScreenerFilter

	for i, tok := range tokens {
		value, ok := parseNumber(tok)
		if !ok {
			continue
		}

		operator, opWords := operatorBefore(tokens, i)
		if opWords == 0 {
			continue
		}

		metricEnd := i - opWords
		for k := maxMetricWords; k >= 1; k-- {
			if metricEnd-k < 0 {
				continue
			}
			metric, found := lexicon.MetricByExact(strings.Join(tokens[metricEnd-k:metricEnd], " "))
			if !found {
				continue
			}
			filters = append(filters, ScreenerFilter{
				Metric:   metric.ID,
				Operator: operator,
				Value:    value,
				Raw:      strings.Join(tokens[metricEnd-k:i+1], " "),
			})
			break
		}
	}

	return filters
}

// operatorBefore matches the longest operator phrase ending at token index
// i (exclusive). Returns the canonical symbol and the phrase word count, or
// the raw phrase when it is operator-shaped ("<word> than") but unknown.
func operatorBefore(tokens []string, i int) (string, int) {
	longest := lexicon.MaxOperatorAliasWords
	for n := longest; n >= 1; n-- {
		if i-n < 0 {
			continue
		}
		phrase := strings.Join(tokens[i-n:i], " ")
		if symbol, ok := lexicon.OperatorForAlias(phrase); ok {
			return symbol, n
		}
	}
	// Unrecognized "<word> than" comparisons pass through raw.
	if i >= 2 && tokens[i-1] == "than" {
		return strings.Join(tokens[i-2:i], " "), 2
	}
	return "", 0
}

func extractQualityFilters(tokens []string) []ScreenerFilter {
	var filters []ScreenerFilter

	for i, tok := range tokens {
		wantsHigh, isAdjective := qualityAdjectives[tok]
		if !isAdjective || i+1 >= len(tokens) {
			continue
		}

		end := i + 1 + maxMetricWords
		if end > len(tokens) {
			end = len(tokens)
		}
		candidate := strings.Join(tokens[i+1:end], " ")
		metric, found := lexicon.MetricByContainment(candidate)
		if !found || !metric.Directional {
			continue
		}

		operator := "<="
		if wantsHigh == metric.HigherIsBetter {
			operator = ">="
		}
		polarity := "low"
		if wantsHigh {
			polarity = "high"
		}
		filters = append(filters, ScreenerFilter{
			Metric:   metric.ID,
			Operator: operator,
			Value:    polarity,
			Raw:      tok + " " + candidate,
		})
	}

	return filters
}

func parseNumber(tok string) (float64, bool) {
	tok = strings.TrimRight(tok, "%x")
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
