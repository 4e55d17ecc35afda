// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lexicon

import "strings"

// =============================================================================
// Screenable Metrics
// =============================================================================

// Metric describes one screenable financial metric.
//
// Thread Safety: Immutable after package initialization.
type Metric struct {
	// ID is the canonical key used downstream ("pe_ratio", "roe", ...).
	ID string

	// DisplayName is the consumer-facing name.
	DisplayName string

	// Aliases are alternative spellings users type. Matched exactly by the
	// numeric extractor and by containment in the quality-adjective pass.
	Aliases []string

	// Category groups metrics for builder UIs (valuation, profitability, ...).
	Category string

	// DefaultOperator seeds the screener builder when the user gives no
	// comparison.
	DefaultOperator string

	// Unit is display-only ("%", "x", "cr").
	Unit string

	// Directional marks metrics where "high"/"low" adjectives are meaningful.
	Directional bool

	// HigherIsBetter gives the adjective polarity. Only read when Directional.
	HigherIsBetter bool
}

// Metrics is the ordered metric table. The quality-adjective pass resolves by
// containment in table order, so more specific metrics come before generic
// ones that share words.
var Metrics = []Metric{
	{
		ID: "pe_ratio", DisplayName: "PE Ratio",
		Aliases:  []string{"pe", "p/e", "pe ratio", "price to earnings", "price earnings ratio"},
		Category: "valuation", DefaultOperator: "<", Unit: "x",
		Directional: true, HigherIsBetter: false,
	},
	{
		ID: "pb_ratio", DisplayName: "PB Ratio",
		Aliases:  []string{"pb", "p/b", "pb ratio", "price to book", "book value ratio"},
		Category: "valuation", DefaultOperator: "<", Unit: "x",
		Directional: true, HigherIsBetter: false,
	},
	{
		ID: "peg_ratio", DisplayName: "PEG Ratio",
		Aliases:  []string{"peg", "peg ratio", "price earnings growth"},
		Category: "valuation", DefaultOperator: "<", Unit: "x",
		Directional: true, HigherIsBetter: false,
	},
	{
		ID: "dividend_yield", DisplayName: "Dividend Yield",
		Aliases:  []string{"dividend yield", "div yield", "yield", "dividend"},
		Category: "income", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "roe", DisplayName: "ROE",
		Aliases:  []string{"roe", "return on equity"},
		Category: "profitability", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "roce", DisplayName: "ROCE",
		Aliases:  []string{"roce", "return on capital employed", "return on capital"},
		Category: "profitability", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "roa", DisplayName: "ROA",
		Aliases:  []string{"roa", "return on assets"},
		Category: "profitability", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "debt_to_equity", DisplayName: "Debt to Equity",
		Aliases:  []string{"debt to equity", "debt equity", "debt/equity", "de ratio", "leverage"},
		Category: "solvency", DefaultOperator: "<", Unit: "x",
		Directional: true, HigherIsBetter: false,
	},
	{
		ID: "interest_coverage", DisplayName: "Interest Coverage",
		Aliases:  []string{"interest coverage", "interest cover", "icr"},
		Category: "solvency", DefaultOperator: ">", Unit: "x",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "current_ratio", DisplayName: "Current Ratio",
		Aliases:  []string{"current ratio", "liquidity ratio"},
		Category: "solvency", DefaultOperator: ">", Unit: "x",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "market_cap", DisplayName: "Market Cap",
		Aliases:  []string{"market cap", "market capitalisation", "market capitalization", "mcap"},
		Category: "size", DefaultOperator: ">", Unit: "cr",
	},
	{
		ID: "revenue_growth", DisplayName: "Revenue Growth",
		Aliases:  []string{"revenue growth", "sales growth", "topline growth"},
		Category: "growth", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "profit_growth", DisplayName: "Profit Growth",
		Aliases:  []string{"profit growth", "earnings growth", "bottomline growth", "pat growth"},
		Category: "growth", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "eps", DisplayName: "EPS",
		Aliases:  []string{"eps", "earnings per share"},
		Category: "profitability", DefaultOperator: ">", Unit: "",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "operating_margin", DisplayName: "Operating Margin",
		Aliases:  []string{"operating margin", "opm", "ebitda margin"},
		Category: "profitability", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "net_profit_margin", DisplayName: "Net Profit Margin",
		Aliases:  []string{"net profit margin", "net margin", "npm", "profit margin"},
		Category: "profitability", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "promoter_holding", DisplayName: "Promoter Holding",
		Aliases:  []string{"promoter holding", "promoter stake", "promoter share"},
		Category: "ownership", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "fii_holding", DisplayName: "FII Holding",
		Aliases:  []string{"fii holding", "fii stake", "institutional holding"},
		Category: "ownership", DefaultOperator: ">", Unit: "%",
		Directional: true, HigherIsBetter: true,
	},
	{
		ID: "beta", DisplayName: "Beta",
		Aliases:  []string{"beta", "market beta"},
		Category: "risk", DefaultOperator: "<", Unit: "",
	},
	{
		ID: "rsi", DisplayName: "RSI",
		Aliases:  []string{"rsi", "relative strength index", "relative strength"},
		Category: "technicals", DefaultOperator: "<", Unit: "",
	},
}

// MetricByExact resolves metric text by exact id / display-name / alias
// equality, case-insensitive and trimmed. No fuzzy matching.
func MetricByExact(text string) (Metric, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Metric{}, false
	}
	for _, m := range Metrics {
		if text == m.ID || text == strings.ToLower(m.DisplayName) {
			return m, true
		}
		for _, alias := range m.Aliases {
			if text == alias {
				return m, true
			}
		}
	}
	return Metric{}, false
}

// MetricByContainment resolves metric text loosely: the first metric in table
// order whose display name or any alias appears as a substring of the text
// wins. Used by the quality-adjective pass, which sees trailing words
// ("dividend yield stocks") the exact matcher would reject.
func MetricByContainment(text string) (Metric, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Metric{}, false
	}
	for _, m := range Metrics {
		if strings.Contains(text, strings.ToLower(m.DisplayName)) {
			return m, true
		}
		for _, alias := range m.Aliases {
			if strings.Contains(text, alias) {
				return m, true
			}
		}
	}
	return Metric{}, false
}
