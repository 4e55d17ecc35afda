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

import (
	"context"
	"testing"
)

func TestSuggestions_NoDuplicateCards(t *testing.T) {
	uc := UserContext{
		Segment:         "fno-trader",
		CurrentTool:     "max-pain-tracker",
		TimeOfDay:       "morning",
		IsExpiry:        true,
		MarketCondition: "volatile",
	}
	suggestions := Suggestions(context.Background(), uc)

	seen := make(map[string]bool)
	for _, s := range suggestions {
		if seen[s.CardID] {
			t.Errorf("duplicate suggestion for %s", s.CardID)
		}
		seen[s.CardID] = true
	}
}

func TestSuggestions_FirstWriteWinsReason(t *testing.T) {
	// fno-risk-advisor is reachable from both the next-tool table (via
	// max-pain-tracker) and the expiry table; the next-tool reason runs
	// first and must be the one kept.
	uc := UserContext{CurrentTool: "max-pain-tracker", IsExpiry: true}
	suggestions := Suggestions(context.Background(), uc)

	for _, s := range suggestions {
		if s.CardID == "fno-risk-advisor" {
			if s.Source != "next_tool" {
				t.Errorf("fno-risk-advisor source = %q, want next_tool (first writer)", s.Source)
			}
			return
		}
	}
	t.Fatal("fno-risk-advisor not suggested")
}

func TestSuggestions_SortedByPriorityAndCapped(t *testing.T) {
	uc := UserContext{
		Segment:         "active-trader",
		CurrentTool:     "market-mood",
		TimeOfDay:       "morning",
		IsExpiry:        true,
		MarketCondition: "bullish",
	}
	suggestions := Suggestions(context.Background(), uc)

	if len(suggestions) > 8 {
		t.Errorf("got %d suggestions, want at most 8", len(suggestions))
	}
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].Priority < suggestions[i-1].Priority {
			t.Errorf("suggestions not sorted by priority at index %d", i)
		}
	}
}

func TestSuggestions_EmptyContext(t *testing.T) {
	if got := Suggestions(context.Background(), UserContext{}); len(got) != 0 {
		t.Errorf("empty context produced %d suggestions", len(got))
	}
}

func TestSuggestWorkflow_FirstMatchWins(t *testing.T) {
	// "option" triggers fno_analysis; "expiry" would trigger expiry_day,
	// but fno_analysis comes first in the table.
	m, ok := SuggestWorkflow("option expiry today")
	if !ok {
		t.Fatal("expected a workflow match")
	}
	if m.Workflow.Name != "fno_analysis" {
		t.Errorf("workflow = %q, want fno_analysis (first match)", m.Workflow.Name)
	}
	if m.Trigger != "option" {
		t.Errorf("trigger = %q, want option", m.Trigger)
	}
}

func TestSuggestWorkflow_NoMatch(t *testing.T) {
	if m, ok := SuggestWorkflow("nothing relevant here"); ok {
		t.Errorf("unexpected workflow match %q", m.Workflow.Name)
	}
	if _, ok := SuggestWorkflow(""); ok {
		t.Error("empty query matched a workflow")
	}
}

func TestGetToolWorkflowInfo_MultipleChains(t *testing.T) {
	info := GetToolWorkflowInfo("fno-risk-advisor")
	if !info.InWorkflow {
		t.Fatal("fno-risk-advisor should belong to workflows")
	}

	positions := make(map[string]string)
	for _, p := range info.Positions {
		positions[p.Workflow] = p.Position
	}
	if positions["fno_analysis"] != "middle" {
		t.Errorf("fno_analysis position = %q, want middle", positions["fno_analysis"])
	}
	if positions["intraday_morning"] != "end" {
		t.Errorf("intraday_morning position = %q, want end", positions["intraday_morning"])
	}
	if positions["fno_analysis"] == positions["intraday_morning"] {
		t.Error("expected differing positions across chains")
	}

	// Neighbors union across chains.
	if !hasID(info.ToolsAfter, "position-sizer") {
		t.Errorf("tools after = %v, want position-sizer included", info.ToolsAfter)
	}
	if !hasID(info.ToolsBefore, "max-pain-tracker") || !hasID(info.ToolsBefore, "volatility-gauge") {
		t.Errorf("tools before = %v, want max-pain-tracker and volatility-gauge", info.ToolsBefore)
	}
}

func TestGetToolWorkflowInfo_StartPosition(t *testing.T) {
	info := GetToolWorkflowInfo("market-mood")
	if !info.InWorkflow {
		t.Fatal("market-mood should belong to workflows")
	}
	for _, p := range info.Positions {
		if p.Workflow == "intraday_morning" && p.Position != "start" {
			t.Errorf("intraday_morning position = %q, want start", p.Position)
		}
	}
}

func TestGetToolWorkflowInfo_UnknownTool(t *testing.T) {
	info := GetToolWorkflowInfo("does-not-exist")
	if info.InWorkflow || len(info.Positions) != 0 {
		t.Errorf("unknown tool reported workflow membership: %+v", info)
	}
}

func TestGetLearningPath(t *testing.T) {
	lp, ok := GetLearningPath("fno-trader")
	if !ok || len(lp.Sequence) == 0 {
		t.Fatalf("GetLearningPath(fno-trader) = (%+v, %v)", lp, ok)
	}
	if _, ok := GetLearningPath("day-dreamer"); ok {
		t.Error("unknown persona returned a path")
	}
}

func hasID(list []string, id string) bool {
	for _, s := range list {
		if s == id {
			return true
		}
	}
	return false
}
