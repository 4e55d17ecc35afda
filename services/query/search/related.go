// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"sort"
	"strings"

	"github.com/AleutianAI/MarketLens/services/query/catalog"
)

// =============================================================================
// Related Cards
// =============================================================================

// Related is one card similar to a source card.
type Related struct {
	Card  catalog.Card `json:"card"`
	Score float64      `json:"score"`
}

const (
	sameCategoryScore   = 0.3
	segmentOverlapScore = 0.15
	tagOverlapScore     = 0.1
	sameComplexityScore = 0.1
	relatedThreshold    = 0.2
	defaultRelatedMax   = 4
)

// RelatedCards ranks catalog cards by pairwise similarity to a source card.
//
// Description:
//
//	Similarity sums: same category 0.3, 0.15 per shared segment, 0.1 per
//	shared tag, same complexity 0.1. Only cards strictly above 0.2 are
//	returned. An unknown card id yields an empty result, not an error.
//
// Inputs:
//
//	cardID - The source card id.
//	maxResults - Cap; <=0 means 4.
//
// Outputs:
//
//	[]Related - Sorted descending by score.
func (e *Engine) RelatedCards(cardID string, maxResults int) []Related {
	if maxResults <= 0 {
		maxResults = defaultRelatedMax
	}
	source, ok := e.catalog.Get(cardID)
	if !ok {
		return nil
	}

	var out []Related
	for _, card := range e.catalog.Cards() {
		if card.ID == source.ID {
			continue
		}
		score := similarity(source, card)
		if score > relatedThreshold {
			out = append(out, Related{Card: card, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

func similarity(a, b catalog.Card) float64 {
	score := 0.0
	if a.Category == b.Category {
		score += sameCategoryScore
	}
	score += segmentOverlapScore * float64(overlapCount(a.Segments, b.Segments))
	score += tagOverlapScore * float64(overlapCount(a.Tags, b.Tags))
	if a.Complexity != "" && a.Complexity == b.Complexity {
		score += sameComplexityScore
	}
	return score
}

func overlapCount(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[strings.ToLower(s)] = true
	}
	n := 0
	for _, s := range b {
		if set[strings.ToLower(s)] {
			n++
		}
	}
	return n
}
