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

import "regexp"

// =============================================================================
// Intent Clusters
// =============================================================================

// IntentCluster groups related query terms and the card ids they route to.
// Priority (1 = strongest) feeds the confidence formula inversely.
type IntentCluster struct {
	Name     string
	Terms    []string
	Tools    []string
	Priority int
}

// Clusters is the ordered cluster table. Detection emits clusters in this
// order before the stable confidence sort, so ties keep this order.
var Clusters = []IntentCluster{
	{
		Name:     "screening",
		Terms:    []string{"screener", "filter", "shortlist", "criteria", "stocks with", "screen stocks", "undervalued"},
		Tools:    []string{"stock-screener", "valuation-meter"},
		Priority: 1,
	},
	{
		Name:     "valuation",
		Terms:    []string{"valuation", "overvalued", "undervalued", "fair value", "pe ratio", "worth buying"},
		Tools:    []string{"valuation-meter", "peer-comparison"},
		Priority: 1,
	},
	{
		Name:     "position_sizing",
		Terms:    []string{"position size", "lot size", "lots", "how many shares", "capital", "risk per trade", "quantity"},
		Tools:    []string{"fno-risk-advisor", "position-sizer"},
		Priority: 1,
	},
	{
		Name:     "options",
		Terms:    []string{"option", "options", "option chain", "strike", "open interest", "calls", "puts", "straddle"},
		Tools:    []string{"option-chain", "max-pain-tracker"},
		Priority: 1,
	},
	{
		Name:     "expiry",
		Terms:    []string{"expiry", "max pain", "rollover", "expiry day"},
		Tools:    []string{"expiry-dashboard", "max-pain-tracker"},
		Priority: 1,
	},
	{
		Name:     "dividends",
		Terms:    []string{"dividend", "dividends", "yield", "payout", "income stocks"},
		Tools:    []string{"dividend-tracker", "stock-screener"},
		Priority: 2,
	},
	{
		Name:     "technicals",
		Terms:    []string{"technical", "technicals", "rsi", "macd", "moving average", "breakout", "candlestick", "momentum", "signals"},
		Tools:    []string{"technical-signals", "breakout-scanner", "candlestick-scanner"},
		Priority: 2,
	},
	{
		Name:     "market_overview",
		Terms:    []string{"market mood", "sentiment", "nifty", "sensex", "market today", "breadth", "advance decline"},
		Tools:    []string{"market-mood", "sector-heatmap"},
		Priority: 2,
	},
	{
		Name:     "sector_rotation",
		Terms:    []string{"sector", "sectors", "heatmap", "rotation", "which sector"},
		Tools:    []string{"sector-heatmap", "fii-dii-flows"},
		Priority: 2,
	},
	{
		Name:     "funds",
		Terms:    []string{"mutual fund", "mutual funds", "sip", "nav", "expense ratio", "fund house"},
		Tools:    []string{"fund-explorer", "sip-planner"},
		Priority: 2,
	},
	{
		Name:     "portfolio_review",
		Terms:    []string{"portfolio", "allocation", "holdings", "diversification", "overlap", "rebalance"},
		Tools:    []string{"portfolio-health", "risk-profiler"},
		Priority: 2,
	},
	{
		Name:     "volatility",
		Terms:    []string{"volatility", "vix", "fear index"},
		Tools:    []string{"volatility-gauge"},
		Priority: 2,
	},
	{
		Name:     "flows",
		Terms:    []string{"fii", "dii", "institutional", "flows"},
		Tools:    []string{"fii-dii-flows"},
		Priority: 3,
	},
	{
		Name:     "global_assets",
		Terms:    []string{"gold", "silver", "crude", "currency", "usdinr", "rupee", "commodities"},
		Tools:    []string{"commodity-trends", "currency-watch"},
		Priority: 3,
	},
	{
		Name:     "tracking",
		Terms:    []string{"watchlist", "track", "alerts", "keep an eye"},
		Tools:    []string{"watchlist-manager"},
		Priority: 3,
	},
}

// =============================================================================
// Phrase Bank
// =============================================================================

// PhraseMapping is a named bucket of phrase variants routing to card ids.
// Phrase words longer than two characters feed the fuzzy-correction
// vocabulary, so phrases are written the way users actually type.
type PhraseMapping struct {
	Name     string
	Phrases  []string
	Cards    []string
	Intent   string
	Priority int
}

// PhraseMappings is the ordered phrase bank.
var PhraseMappings = []PhraseMapping{
	{
		Name: "valuation_basic",
		Phrases: []string{
			"is this stock overvalued",
			"fair value of a stock",
			"cheap stocks to buy now",
			"undervalued largecap stocks",
			"pe ratio of this stock",
		},
		Cards:    []string{"valuation-meter", "peer-comparison"},
		Intent:   "check_valuation",
		Priority: 1,
	},
	{
		Name: "screening_basic",
		Phrases: []string{
			"stocks with high dividend yield",
			"find stocks with low pe",
			"screen stocks by roe and debt",
			"best stocks under five hundred",
			"filter stocks with strong profit growth",
		},
		Cards:    []string{"stock-screener"},
		Intent:   "screen_stocks",
		Priority: 1,
	},
	{
		Name: "fno_risk",
		Phrases: []string{
			"how many lots can i buy",
			"calculate position size before entering",
			"position size for my capital",
			"risk per trade for options",
			"margin needed for this trade",
		},
		Cards:    []string{"fno-risk-advisor", "position-sizer"},
		Intent:   "size_position",
		Priority: 1,
	},
	{
		Name: "options_analysis",
		Phrases: []string{
			"option chain for nifty",
			"where is the max pain",
			"open interest buildup today",
		},
		Cards:    []string{"option-chain", "max-pain-tracker"},
		Intent:   "analyze_options",
		Priority: 1,
	},
	{
		Name: "expiry_watch",
		Phrases: []string{
			"what happens on expiry",
			"expiry day strategy",
			"rollover data for this series",
		},
		Cards:    []string{"expiry-dashboard", "max-pain-tracker"},
		Intent:   "expiry_watch",
		Priority: 1,
	},
	{
		Name: "dividend_income",
		Phrases: []string{
			"best dividend stocks for income",
			"show me top dividend stocks",
			"stocks that pay good dividends",
			"upcoming dividend dates this month",
		},
		Cards:    []string{"dividend-tracker", "stock-screener"},
		Intent:   "find_dividends",
		Priority: 2,
	},
	{
		Name: "technical_setup",
		Phrases: []string{
			"stocks near breakout levels",
			"candlestick patterns today",
			"rsi below thirty oversold",
			"moving average crossover signals",
		},
		Cards:    []string{"technical-signals", "breakout-scanner", "candlestick-scanner"},
		Intent:   "find_setups",
		Priority: 2,
	},
	{
		Name: "market_pulse",
		Phrases: []string{
			"how is the market today",
			"market mood right now",
			"which sectors are moving",
		},
		Cards:    []string{"market-mood", "sector-heatmap"},
		Intent:   "market_pulse",
		Priority: 2,
	},
	{
		Name: "fund_selection",
		Phrases: []string{
			"best mutual funds to invest",
			"start a sip this month",
			"compare fund returns and ratings",
		},
		Cards:    []string{"fund-explorer", "sip-planner"},
		Intent:   "pick_funds",
		Priority: 2,
	},
	{
		Name: "portfolio_checkup",
		Phrases: []string{
			"review my portfolio health",
			"is my portfolio diversified",
			"portfolio overlap check",
		},
		Cards:    []string{"portfolio-health", "risk-profiler"},
		Intent:   "review_portfolio",
		Priority: 2,
	},
	{
		Name: "tracking",
		Phrases: []string{
			"add this to my watchlist",
			"track these stocks for me",
			"alert me when it moves",
		},
		Cards:    []string{"watchlist-manager"},
		Intent:   "track_stocks",
		Priority: 3,
	},
}

// =============================================================================
// Structural Query Patterns
// =============================================================================

// QueryPattern is a structural regex tested against the raw query. A hit is
// the strongest intent signal the detector emits.
type QueryPattern struct {
	Name    string
	Pattern *regexp.Regexp
	Tools   []string
	Intent  string
}

// QueryPatterns is the ordered pattern table. All matching patterns are
// emitted; order only affects tie order downstream.
var QueryPatterns = []QueryPattern{
	{
		Name:    "position_size_calc",
		Pattern: regexp.MustCompile(`(?i)calculate position size`),
		Tools:   []string{"fno-risk-advisor"},
		Intent:  "size_position",
	},
	{
		Name:    "lots_for_capital",
		Pattern: regexp.MustCompile(`(?i)how many lots.*capital`),
		Tools:   []string{"fno-risk-advisor"},
		Intent:  "size_position",
	},
	{
		Name:    "shares_quantity",
		Pattern: regexp.MustCompile(`(?i)how many shares`),
		Tools:   []string{"position-sizer"},
		Intent:  "size_position",
	},
	{
		Name:    "valuation_check",
		Pattern: regexp.MustCompile(`(?i)is .+ (?:overvalued|undervalued|expensive|cheap)`),
		Tools:   []string{"valuation-meter"},
		Intent:  "check_valuation",
	},
	{
		Name:    "peer_compare",
		Pattern: regexp.MustCompile(`(?i)compare .+ (?:with|vs|versus|and) .+`),
		Tools:   []string{"peer-comparison"},
		Intent:  "compare_stocks",
	},
	{
		Name:    "max_pain_where",
		Pattern: regexp.MustCompile(`(?i)(?:where|what) is (?:the )?max pain`),
		Tools:   []string{"max-pain-tracker"},
		Intent:  "analyze_options",
	},
	{
		Name:    "screen_prefix",
		Pattern: regexp.MustCompile(`(?i)^stocks? with `),
		Tools:   []string{"stock-screener"},
		Intent:  "screen_stocks",
	},
	{
		Name:    "buy_sell_advice",
		Pattern: regexp.MustCompile(`(?i)should i (?:buy|sell)`),
		Tools:   []string{"valuation-meter", "market-mood"},
		Intent:  "seek_advice",
	},
	{
		Name:    "sip_start",
		Pattern: regexp.MustCompile(`(?i)start(?:ing)? (?:a )?sip`),
		Tools:   []string{"sip-planner"},
		Intent:  "pick_funds",
	},
	{
		Name:    "market_pulse",
		Pattern: regexp.MustCompile(`(?i)how (?:is|was) the market`),
		Tools:   []string{"market-mood"},
		Intent:  "market_pulse",
	},
	{
		Name:    "trade_risk",
		Pattern: regexp.MustCompile(`(?i)(?:risk|margin) (?:for|on) (?:this|my) (?:trade|position)`),
		Tools:   []string{"fno-risk-advisor"},
		Intent:  "size_position",
	},
}
