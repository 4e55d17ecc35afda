// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import "testing"

func TestLoad_EmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cat.Len() < 20 {
		t.Errorf("catalog has %d cards, expected at least 20", cat.Len())
	}

	card, ok := cat.Get("fno-risk-advisor")
	if !ok {
		t.Fatal("fno-risk-advisor missing from catalog")
	}
	if !card.HasRiskSizing || !card.HasEdgeMetric {
		t.Errorf("fno-risk-advisor flags = risk:%v edge:%v, want both true", card.HasRiskSizing, card.HasEdgeMetric)
	}
	if card.Category != "fno" {
		t.Errorf("fno-risk-advisor category = %q, want fno", card.Category)
	}
}

func TestLoadFrom_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"no cards", "cards: []"},
		{"missing label", "cards:\n  - id: a\n    category: x"},
		{"bad complexity", "cards:\n  - id: a\n    label: A\n    category: x\n    complexity: wild"},
		{"duplicate id", "cards:\n  - id: a\n    label: A\n    category: x\n  - id: a\n    label: B\n    category: y"},
	}
	for _, tt := range tests {
		if _, err := LoadFrom([]byte(tt.yaml)); err == nil {
			t.Errorf("%s: LoadFrom accepted invalid catalog", tt.name)
		}
	}
}

func TestCatalog_Lookup(t *testing.T) {
	cat := NewCatalog([]Card{
		{ID: "a", Label: "A", Category: "x"},
		{ID: "b", Label: "B", Category: "y"},
	})

	if !cat.Has("a") || cat.Has("z") {
		t.Error("Has() membership incorrect")
	}
	if card, ok := cat.Get("b"); !ok || card.Label != "B" {
		t.Errorf("Get(b) = (%+v, %v)", card, ok)
	}
	if _, ok := cat.Get("missing"); ok {
		t.Error("Get(missing) should not succeed")
	}
	if got := len(cat.Cards()); got != 2 {
		t.Errorf("Cards() length = %d, want 2", got)
	}
}
