// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package match implements fuzzy string matching for query correction:
// Levenshtein edit distance and nearest-neighbor lookup against an ordered
// dictionary.
package match

// Distance computes the Levenshtein edit distance between a and b.
//
// Description:
//
//	Classic dynamic-programming distance with unit cost for insert, delete,
//	and substitute. No case folding is performed; callers lowercase first.
//
// Inputs:
//
//	a, b - The strings to compare. Compared byte-wise; query text is ASCII
//	       after normalization.
//
// Outputs:
//
//	int - The edit distance. Zero iff a == b.
//
// Thread Safety: Pure function.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // delete
				curr[j-1]+1,    // insert
				prev[j-1]+cost, // substitute
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// FindClosestMatch scans the entire dictionary for the nearest word.
//
// Description:
//
//	Keeps the minimum-distance candidate and returns it only when the
//	distance is within maxDistance. Distance ties keep the first candidate
//	encountered, so dictionary order is part of the contract: callers must
//	pass a deterministically ordered dictionary.
//
// Inputs:
//
//	word - The lowercased word to correct.
//	dictionary - Ordered candidate words.
//	maxDistance - Largest acceptable edit distance.
//
// Outputs:
//
//	string - The closest match, or "" when nothing is within maxDistance.
//	bool - True when a match was found.
func FindClosestMatch(word string, dictionary []string, maxDistance int) (string, bool) {
	best := ""
	bestDist := maxDistance + 1

	for _, candidate := range dictionary {
		if d := Distance(word, candidate); d < bestDist {
			best = candidate
			bestDist = d
			if bestDist == 0 {
				break
			}
		}
	}

	if bestDist > maxDistance {
		return "", false
	}
	return best, true
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
