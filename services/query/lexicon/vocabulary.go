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

import (
	"log/slog"
	"strings"
	"sync"
)

// =============================================================================
// Fuzzy-Correction Vocabulary
// =============================================================================

// Vocab is the known-word set the fuzzy corrector matches against.
//
// Description:
//
//	Built once by unioning every lexicon table: metric display names and
//	aliases, operator aliases, phrase-bank words, market-term words, time
//	phrases, and sentiment phrases. Entries and split words of length <= 2
//	are excluded: short tokens ("pe", "oi") produce false fuzzy matches and
//	are handled by exact alias lookups and the typo table instead.
//
//	Insertion order is preserved: the nearest-match scan breaks distance
//	ties by first-encountered order, so iteration must be deterministic.
//
// Thread Safety: Immutable after construction.
type Vocab struct {
	words   []string
	present map[string]bool
}

var (
	vocabOnce sync.Once
	vocab     *Vocab
)

// Vocabulary returns the process-wide vocabulary, building it on first use.
func Vocabulary() *Vocab {
	vocabOnce.Do(func() {
		vocab = buildVocabulary()
		slog.Info("fuzzy-correction vocabulary built", slog.Int("word_count", vocab.Len()))
	})
	return vocab
}

func buildVocabulary() *Vocab {
	v := &Vocab{present: make(map[string]bool, 512)}

	addEntry := func(entry string) {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if len(entry) > 2 && !v.present[entry] {
			v.present[entry] = true
			v.words = append(v.words, entry)
		}
		for _, w := range strings.Fields(entry) {
			if len(w) > 2 && !v.present[w] {
				v.present[w] = true
				v.words = append(v.words, w)
			}
		}
	}

	for _, m := range Metrics {
		addEntry(m.DisplayName)
		for _, alias := range m.Aliases {
			addEntry(alias)
		}
	}
	for _, op := range Operators {
		for _, alias := range op.Aliases {
			addEntry(alias)
		}
	}
	for _, pm := range PhraseMappings {
		for _, phrase := range pm.Phrases {
			addEntry(phrase)
		}
	}
	for _, term := range MarketTerms {
		addEntry(term)
	}
	for _, tp := range TimePhrases {
		addEntry(tp.Phrase)
	}
	for _, phrase := range BullishPhrases {
		addEntry(phrase)
	}
	for _, phrase := range BearishPhrases {
		addEntry(phrase)
	}
	for _, phrase := range NeutralPhrases {
		addEntry(phrase)
	}

	return v
}

// Contains reports whether word is a known vocabulary entry.
func (v *Vocab) Contains(word string) bool {
	return v.present[word]
}

// Words returns the vocabulary in insertion order. Shared slice; callers
// must not mutate.
func (v *Vocab) Words() []string {
	return v.words
}

// Len returns the vocabulary size.
func (v *Vocab) Len() int {
	return len(v.words)
}
