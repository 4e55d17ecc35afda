// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package suggest

import "strings"

// =============================================================================
// Workflow Chains
// =============================================================================

// WorkflowChain is a canonical ordered tool sequence and the trigger phrases
// that select it.
type WorkflowChain struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sequence    []string `json:"sequence"`
	Triggers    []string `json:"triggers"`
}

// WorkflowChains is an ordered slice, not a map: SuggestWorkflow returns the
// first chain with a trigger hit, so iteration order is part of the
// contract.
var WorkflowChains = []WorkflowChain{
	{
		Name:        "intraday_morning",
		Description: "Morning prep before an intraday session",
		Sequence:    []string{"market-mood", "sector-heatmap", "volatility-gauge", "fno-risk-advisor"},
		Triggers:    []string{"morning", "intraday", "market open", "day trade"},
	},
	{
		Name:        "fno_analysis",
		Description: "Derivatives homework from chain to position size",
		Sequence:    []string{"option-chain", "max-pain-tracker", "fno-risk-advisor", "position-sizer"},
		Triggers:    []string{"option", "fno", "derivatives", "max pain"},
	},
	{
		Name:        "expiry_day",
		Description: "Expiry-day monitoring loop",
		Sequence:    []string{"expiry-dashboard", "max-pain-tracker", "option-chain"},
		Triggers:    []string{"expiry", "rollover"},
	},
	{
		Name:        "valuation_deep_dive",
		Description: "From screen to shortlist with valuation checks",
		Sequence:    []string{"stock-screener", "valuation-meter", "peer-comparison", "watchlist-manager"},
		Triggers:    []string{"undervalued", "valuation", "fair value", "cheap stocks"},
	},
	{
		Name:        "dividend_hunt",
		Description: "Building an income-focused shortlist",
		Sequence:    []string{"stock-screener", "dividend-tracker", "portfolio-health"},
		Triggers:    []string{"dividend", "income", "yield"},
	},
	{
		Name:        "fund_selection",
		Description: "Picking funds and planning contributions",
		Sequence:    []string{"fund-explorer", "sip-planner", "portfolio-health"},
		Triggers:    []string{"mutual fund", "sip", "invest monthly"},
	},
}

// WorkflowMatch names the chain a query selected and which trigger fired.
type WorkflowMatch struct {
	Workflow WorkflowChain `json:"workflow"`
	Trigger  string        `json:"trigger"`
}

// SuggestWorkflow returns the first chain whose trigger list has a substring
// hit in the query. First match wins, not best match.
//
// Outputs:
//
//	WorkflowMatch - The matched chain and trigger.
//	bool - False when no chain matches.
func SuggestWorkflow(query string) (WorkflowMatch, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return WorkflowMatch{}, false
	}
	for _, chain := range WorkflowChains {
		for _, trigger := range chain.Triggers {
			if strings.Contains(q, trigger) {
				return WorkflowMatch{Workflow: chain, Trigger: trigger}, true
			}
		}
	}
	return WorkflowMatch{}, false
}

// =============================================================================
// Workflow Position Introspection
// =============================================================================

// WorkflowPosition is one chain membership for a tool.
type WorkflowPosition struct {
	Workflow string `json:"workflow"`
	Position string `json:"position"` // start, middle, end
	Index    int    `json:"index"`
}

// ToolWorkflowInfo describes where a tool sits across all known chains.
type ToolWorkflowInfo struct {
	ToolID      string             `json:"tool_id"`
	InWorkflow  bool               `json:"in_workflow"`
	Positions   []WorkflowPosition `json:"positions,omitempty"`
	ToolsBefore []string           `json:"tools_before,omitempty"`
	ToolsAfter  []string           `json:"tools_after,omitempty"`
}

// GetToolWorkflowInfo scans every chain for the tool, classifying its
// position per chain and unioning its immediate neighbors across chains. An
// unknown tool yields InWorkflow=false, never an error.
func GetToolWorkflowInfo(toolID string) ToolWorkflowInfo {
	info := ToolWorkflowInfo{ToolID: toolID}
	beforeSeen := make(map[string]bool)
	afterSeen := make(map[string]bool)

	for _, chain := range WorkflowChains {
		for i, id := range chain.Sequence {
			if id != toolID {
				continue
			}
			position := "middle"
			switch i {
			case 0:
				position = "start"
			case len(chain.Sequence) - 1:
				position = "end"
			}
			info.InWorkflow = true
			info.Positions = append(info.Positions, WorkflowPosition{
				Workflow: chain.Name,
				Position: position,
				Index:    i,
			})
			if i > 0 && !beforeSeen[chain.Sequence[i-1]] {
				beforeSeen[chain.Sequence[i-1]] = true
				info.ToolsBefore = append(info.ToolsBefore, chain.Sequence[i-1])
			}
			if i < len(chain.Sequence)-1 && !afterSeen[chain.Sequence[i+1]] {
				afterSeen[chain.Sequence[i+1]] = true
				info.ToolsAfter = append(info.ToolsAfter, chain.Sequence[i+1])
			}
			break
		}
	}

	return info
}

// =============================================================================
// Learning Paths
// =============================================================================

// LearningPath is an ordered card sequence for onboarding a persona.
type LearningPath struct {
	Persona     string   `json:"persona"`
	Description string   `json:"description"`
	Sequence    []string `json:"sequence"`
}

var learningPaths = []LearningPath{
	{
		Persona:     "beginner",
		Description: "From market basics to a first SIP",
		Sequence:    []string{"market-mood", "sector-heatmap", "fund-explorer", "sip-planner", "watchlist-manager"},
	},
	{
		Persona:     "long-term",
		Description: "Building and maintaining a quality portfolio",
		Sequence:    []string{"stock-screener", "valuation-meter", "peer-comparison", "dividend-tracker", "portfolio-health"},
	},
	{
		Persona:     "active-trader",
		Description: "Daily rhythm for momentum trading",
		Sequence:    []string{"market-mood", "sector-heatmap", "technical-signals", "breakout-scanner", "position-sizer"},
	},
	{
		Persona:     "fno-trader",
		Description: "Derivatives discipline from chain to sizing",
		Sequence:    []string{"volatility-gauge", "option-chain", "max-pain-tracker", "fno-risk-advisor", "position-sizer"},
	},
}

// GetLearningPath returns the onboarding path for a persona.
func GetLearningPath(persona string) (LearningPath, bool) {
	for _, lp := range learningPaths {
		if lp.Persona == persona {
			return lp, true
		}
	}
	return LearningPath{}, false
}

// LearningPaths returns all persona paths in definition order.
func LearningPaths() []LearningPath {
	return learningPaths
}
