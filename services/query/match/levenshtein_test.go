// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package match

import "testing"

func TestDistance_Classic(t *testing.T) {
	if got := Distance("kitten", "sitting"); got != 3 {
		t.Errorf("Distance(kitten, sitting) = %d, want 3", got)
	}
}

func TestDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "dividend", "pe ratio"} {
		if got := Distance(s, s); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"stocks", "sotcks"},
		{"dividend", "divident"},
		{"", "ratio"},
		{"portfolio", "porfolio"},
	}
	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance(%q, %q) = %d but reversed = %d", p[0], p[1], ab, ba)
		}
	}
}

func TestDistance_EmptyOperands(t *testing.T) {
	if got := Distance("", "ratio"); got != 5 {
		t.Errorf("Distance(\"\", ratio) = %d, want 5", got)
	}
	if got := Distance("yield", ""); got != 5 {
		t.Errorf("Distance(yield, \"\") = %d, want 5", got)
	}
}

func TestFindClosestMatch_Basic(t *testing.T) {
	dict := []string{"dividend", "stocks", "ratio", "yield"}

	got, ok := FindClosestMatch("sotcks", dict, 2)
	if !ok || got != "stocks" {
		t.Errorf("FindClosestMatch(sotcks) = (%q, %v), want (stocks, true)", got, ok)
	}
}

func TestFindClosestMatch_RespectsMaxDistance(t *testing.T) {
	dict := []string{"dividend", "stocks"}

	if got, ok := FindClosestMatch("xyzzy", dict, 2); ok {
		t.Errorf("FindClosestMatch(xyzzy) = %q, want no match", got)
	}
}

func TestFindClosestMatch_TieKeepsFirstEncountered(t *testing.T) {
	// "bat" and "hat" are both distance 1 from "cat"; dictionary order
	// decides the winner.
	dict := []string{"bat", "hat", "cat-ish"}
	got, ok := FindClosestMatch("cat", dict, 2)
	if !ok || got != "bat" {
		t.Errorf("FindClosestMatch(cat) = (%q, %v), want (bat, true)", got, ok)
	}

	reversed := []string{"hat", "bat", "cat-ish"}
	got, ok = FindClosestMatch("cat", reversed, 2)
	if !ok || got != "hat" {
		t.Errorf("FindClosestMatch(cat) over reversed dict = (%q, %v), want (hat, true)", got, ok)
	}
}

func TestFindClosestMatch_ExactMatchWins(t *testing.T) {
	dict := []string{"ration", "ratio"}
	got, ok := FindClosestMatch("ratio", dict, 2)
	if !ok || got != "ratio" {
		t.Errorf("FindClosestMatch(ratio) = (%q, %v), want (ratio, true)", got, ok)
	}
}
