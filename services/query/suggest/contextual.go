// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package suggest produces context-driven card recommendations: "what
// next" suggestions from session context, workflow-chain matching, and
// persona learning paths. All lookups are against static tables; every
// function is stateless and total.
package suggest

import (
	"context"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("marketlens.query.suggest")

var suggestionsBySource = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "marketlens",
	Subsystem: "suggest",
	Name:      "emitted_total",
	Help:      "Contextual suggestions emitted, by source table.",
}, []string{"source"})

// =============================================================================
// Context and Suggestion Types
// =============================================================================

// UserContext is the session snapshot supplied fresh on every call. The
// engine keeps no state between calls.
type UserContext struct {
	Segment         string   `json:"segment,omitempty"`
	CurrentTool     string   `json:"current_tool,omitempty"`
	RecentTools     []string `json:"recent_tools,omitempty"`
	TimeOfDay       string   `json:"time_of_day,omitempty"` // morning, afternoon, evening
	DayOfWeek       string   `json:"day_of_week,omitempty"`
	IsExpiry        bool     `json:"is_expiry,omitempty"`
	MarketCondition string   `json:"market_condition,omitempty"` // bullish, bearish, volatile, sideways
}

// Suggestion is one recommended card with the reason it was picked.
type Suggestion struct {
	CardID   string `json:"card_id"`
	Reason   string `json:"reason"`
	Source   string `json:"source"`
	Priority int    `json:"priority"`
}

// maxSuggestions caps the merged suggestion list.
const maxSuggestions = 8

// =============================================================================
// Static Suggestion Tables
// =============================================================================

type rule struct {
	card   string
	reason string
}

// nextToolMap: after using X, suggest Y. Priority 1.
var nextToolMap = map[string][]rule{
	"market-mood": {
		{"sector-heatmap", "See which sectors are driving the mood"},
		{"fii-dii-flows", "Check if institutions agree with the mood"},
	},
	"sector-heatmap": {
		{"stock-screener", "Screen stocks inside the leading sector"},
		{"breakout-scanner", "Find breakouts in rotating sectors"},
	},
	"stock-screener": {
		{"valuation-meter", "Sanity-check valuations of your shortlist"},
		{"watchlist-manager", "Save the shortlist before it scrolls away"},
	},
	"valuation-meter": {
		{"peer-comparison", "Compare against sector peers before deciding"},
	},
	"peer-comparison": {
		{"watchlist-manager", "Track the winner of the comparison"},
	},
	"option-chain": {
		{"max-pain-tracker", "See where option writers want expiry"},
		{"fno-risk-advisor", "Size the trade before entering"},
	},
	"max-pain-tracker": {
		{"fno-risk-advisor", "Size your position against the max pain level"},
	},
	"fno-risk-advisor": {
		{"position-sizer", "Convert the risk numbers into exact lots"},
	},
	"technical-signals": {
		{"candlestick-scanner", "Confirm signals with candlestick patterns"},
		{"position-sizer", "Size the trade the signals suggest"},
	},
	"breakout-scanner": {
		{"volatility-gauge", "Check if volatility supports the breakout"},
	},
	"fund-explorer": {
		{"sip-planner", "Turn a fund pick into a monthly plan"},
	},
	"sip-planner": {
		{"portfolio-health", "See how the new SIP fits your portfolio"},
	},
	"portfolio-health": {
		{"risk-profiler", "Drill into the risk side of the checkup"},
	},
	"dividend-tracker": {
		{"stock-screener", "Screen for more dividend payers"},
	},
}

// timeOfDayRules: priority 2.
var timeOfDayRules = map[string][]rule{
	"morning": {
		{"market-mood", "Get the pre-open pulse before trading"},
		{"sector-heatmap", "See which sectors open strong"},
		{"earnings-calendar", "Results due today can move your holdings"},
	},
	"afternoon": {
		{"fii-dii-flows", "Institutional flows firm up after lunch"},
		{"volatility-gauge", "Watch for afternoon volatility shifts"},
	},
	"evening": {
		{"portfolio-health", "Review the day's damage or gains"},
		{"watchlist-manager", "Prep tomorrow's watchlist"},
	},
}

// expiryRules: priority 1, applied when context.IsExpiry.
var expiryRules = []rule{
	{"expiry-dashboard", "It's expiry day - watch OI shifts live"},
	{"max-pain-tracker", "Max pain matters most on expiry day"},
	{"fno-risk-advisor", "Expiry-day moves punish oversized positions"},
}

// marketConditionRules: priority 2.
var marketConditionRules = map[string][]rule{
	"bullish": {
		{"breakout-scanner", "Breakouts follow through in a bullish tape"},
		{"stock-screener", "Shop for leaders while breadth is strong"},
	},
	"bearish": {
		{"risk-profiler", "Check drawdown exposure in a weak tape"},
		{"dividend-tracker", "Yield cushions a falling market"},
	},
	"volatile": {
		{"volatility-gauge", "Track the VIX spike as it develops"},
		{"fno-risk-advisor", "Cut position size when ranges widen"},
	},
	"sideways": {
		{"option-chain", "Range-bound markets favor option writers"},
		{"peer-comparison", "Use the quiet tape for homework"},
	},
}

// segmentDefaults: priority 3 fallbacks per user segment.
var segmentDefaults = map[string][]rule{
	"beginner": {
		{"market-mood", "A simple read on what the market is doing"},
		{"fund-explorer", "Funds are the easiest way to start"},
		{"sip-planner", "Small monthly amounts compound well"},
	},
	"long-term": {
		{"stock-screener", "Find quality compounders"},
		{"portfolio-health", "A periodic checkup keeps allocation honest"},
		{"dividend-tracker", "Income smooths long holding periods"},
	},
	"active-trader": {
		{"technical-signals", "Fresh setups on your watchlist"},
		{"sector-heatmap", "Trade the rotating sector"},
		{"breakout-scanner", "Momentum names on the move"},
	},
	"fno-trader": {
		{"option-chain", "Start from the chain"},
		{"max-pain-tracker", "Know where writers are positioned"},
		{"fno-risk-advisor", "Size before you trade"},
	},
}

// =============================================================================
// Contextual Suggestions
// =============================================================================

// Suggestions merges the five static suggestion sources for a context.
//
// Description:
//
//	Sources apply in fixed order: next-tool (priority 1), time-of-day (2),
//	expiry (1), market-condition (2), segment defaults (3). A card already
//	suggested is never re-added, keeping the first reason even when a later
//	source carries a stronger priority. The merged list is stably sorted by
//	priority ascending and capped at eight.
//
// Inputs:
//
//	ctx - Context for tracing only.
//	uc - The session snapshot.
//
// Outputs:
//
//	[]Suggestion - Merged suggestions. Empty for an empty context.
//
// Thread Safety: Pure function over immutable tables.
func Suggestions(ctx context.Context, uc UserContext) []Suggestion {
	_, span := tracer.Start(ctx, "suggest.Suggestions")
	defer span.End()

	var out []Suggestion
	seen := make(map[string]bool)

	add := func(r rule, source string, priority int) {
		if seen[r.card] {
			return
		}
		seen[r.card] = true
		out = append(out, Suggestion{CardID: r.card, Reason: r.reason, Source: source, Priority: priority})
		suggestionsBySource.WithLabelValues(source).Inc()
	}

	if uc.CurrentTool != "" {
		for _, r := range nextToolMap[uc.CurrentTool] {
			add(r, "next_tool", 1)
		}
	}
	if uc.TimeOfDay != "" {
		for _, r := range timeOfDayRules[uc.TimeOfDay] {
			add(r, "time_of_day", 2)
		}
	}
	if uc.IsExpiry {
		for _, r := range expiryRules {
			add(r, "expiry", 1)
		}
	}
	if uc.MarketCondition != "" {
		for _, r := range marketConditionRules[uc.MarketCondition] {
			add(r, "market_condition", 2)
		}
	}
	if uc.Segment != "" {
		for _, r := range segmentDefaults[uc.Segment] {
			add(r, "segment_default", 3)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}

	span.SetAttributes(attribute.Int("suggestions", len(out)))
	return out
}
