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

import "testing"

func TestNormalizeQuery_Basics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Stocks   With   PE ", "stocks with pe"},
		{"EQUITIES to buy", "stocks to buy"},
		{"shares vs mutualfunds", "stocks vs mutual funds"},
		{"cheap largecap shares", "undervalued largecap stocks"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeQuery(tt.in); got != tt.want {
			t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeQuery_WholeWordOnly(t *testing.T) {
	// "oi" rewrites to "open interest" but must not fire inside words.
	if got := NormalizeQuery("oi buildup"); got != "open interest buildup" {
		t.Errorf("NormalizeQuery(oi buildup) = %q", got)
	}
	if got := NormalizeQuery("going somewhere"); got != "going somewhere" {
		t.Errorf("NormalizeQuery(going somewhere) = %q, synonym fired inside a word", got)
	}
}

func TestNormalizeQuery_Idempotent(t *testing.T) {
	queries := []string{
		"equities with high div yield",
		"cheap shares vs mutualfunds",
		"charts for nifty",
		"stocks with pe below 15",
	}
	for _, q := range queries {
		once := NormalizeQuery(q)
		twice := NormalizeQuery(once)
		if once != twice {
			t.Errorf("NormalizeQuery not idempotent for %q: %q != %q", q, once, twice)
		}
	}
}
