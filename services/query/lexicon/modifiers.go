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

// =============================================================================
// Modifier Phrase Lists
// =============================================================================

// TimePhrase maps a natural-language timeframe phrase to a canonical code.
type TimePhrase struct {
	Phrase    string
	Canonical string
}

// TimePhrases is scanned in order; the first phrase found in the corrected
// query sets the timeframe, so more specific phrases come first.
var TimePhrases = []TimePhrase{
	{"this week", "1w"},
	{"this month", "1m"},
	{"this year", "1y"},
	{"last week", "1w"},
	{"last month", "1m"},
	{"last year", "1y"},
	{"short term", "1m"},
	{"medium term", "1y"},
	{"long term", "5y"},
	{"intraday", "1d"},
	{"today", "1d"},
	{"tomorrow", "1d"},
	{"quarterly", "3m"},
	{"yearly", "1y"},
}

// Sentiment phrase lists. Scanned in order against the corrected query;
// bullish wins over bearish when both appear, matching list order below.
var (
	BullishPhrases = []string{"bullish", "bull run", "uptrend", "rally", "going up", "positive on", "buy the dip"}
	BearishPhrases = []string{"bearish", "downtrend", "crash", "correction", "going down", "negative on", "sell off"}
	NeutralPhrases = []string{"sideways", "rangebound", "range bound", "flat market", "consolidating"}
)

// ComparisonPhrases mark comparison intent for the modifier extractor.
var ComparisonPhrases = []string{"versus", "vs", "compared to", "compare", "against", "better than", "worse than"}

// MarketTerms is the Indian-market vocabulary the fuzzy corrector should
// recognize. Words longer than two characters feed the vocabulary set.
var MarketTerms = []string{
	"nifty", "sensex", "bank nifty", "midcap", "smallcap", "largecap",
	"futures", "options", "expiry", "lot size", "margin", "leverage",
	"circuit", "upper circuit", "lower circuit", "delivery", "intraday",
	"stop loss", "target", "breakout", "support", "demat", "broker",
	"bonus", "split", "buyback", "listing", "premium", "discount",
	"volatility", "volume", "momentum", "screener", "watchlist",
	"portfolio", "holdings", "returns", "growth", "earnings", "quarterly",
}

// SymbolStoplist excludes common finance acronyms from ticker-symbol
// detection: they match the all-caps shape of NSE symbols but are metric or
// market vocabulary, not scrips.
var SymbolStoplist = map[string]bool{
	"PE": true, "PB": true, "PEG": true, "EPS": true, "ROE": true,
	"ROCE": true, "ROA": true, "RSI": true, "MACD": true, "VIX": true,
	"NSE": true, "BSE": true, "MCX": true, "SEBI": true, "MF": true,
	"SIP": true, "FII": true, "DII": true, "IPO": true, "FNO": true,
	"ETF": true, "NAV": true, "OI": true, "IV": true, "ATM": true,
	"OTM": true, "ITM": true, "USD": true, "INR": true, "GDP": true,
	"YOY": true, "QOQ": true, "CAGR": true, "EMI": true, "LTP": true,
}

// ErrorSuggestions is consumer-facing copy for the UI's "no suggestions"
// state when a query resolves to nothing.
var ErrorSuggestions = []string{
	"Try a metric and a number, like \"stocks with pe below 15\"",
	"Search for a card by name, like \"option chain\" or \"sector heatmap\"",
	"Ask about valuation, like \"is this stock overvalued\"",
	"Describe what you want to size, like \"calculate position size\"",
	"Browse the catalog if nothing here fits",
}
