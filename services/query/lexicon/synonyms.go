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
	_ "embed"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// Synonym and Typo Rewrite Rules
// =============================================================================

//go:embed synonyms.yaml
var synonymsYAML []byte

// SynonymRule rewrites whole-word occurrences of From to To. Rules apply in
// table order, once each; a To produced by an earlier rule is never itself
// rewritten within the same pass.
type SynonymRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`

	// Pattern is the compiled word-boundary regex for From.
	Pattern *regexp.Regexp `yaml:"-"`
}

// TypoCorrection rewrites plain substring occurrences of From to To. Unlike
// synonyms, no word-boundary check: multi-word typos like "pe ration" are
// fixed wherever they occur.
type TypoCorrection struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

var (
	rewriteOnce  sync.Once
	rewriteErr   error
	synonymRules []SynonymRule
	typoRules    []TypoCorrection
)

func loadRewriteRules() {
	var doc struct {
		Synonyms []SynonymRule    `yaml:"synonyms"`
		Typos    []TypoCorrection `yaml:"typo_corrections"`
	}
	if err := yaml.Unmarshal(synonymsYAML, &doc); err != nil {
		rewriteErr = fmt.Errorf("lexicon: parsing synonyms.yaml: %w", err)
		return
	}
	for i := range doc.Synonyms {
		doc.Synonyms[i].Pattern = regexp.MustCompile(`\b` + regexp.QuoteMeta(doc.Synonyms[i].From) + `\b`)
	}
	synonymRules = doc.Synonyms
	typoRules = doc.Typos
	slog.Info("rewrite rules loaded",
		slog.Int("synonym_count", len(synonymRules)),
		slog.Int("typo_count", len(typoRules)))
}

// SynonymRules returns the ordered synonym table. The slice is shared and
// must not be mutated.
func SynonymRules() []SynonymRule {
	rewriteOnce.Do(loadRewriteRules)
	return synonymRules
}

// TypoCorrections returns the ordered typo table. The slice is shared and
// must not be mutated.
func TypoCorrections() []TypoCorrection {
	rewriteOnce.Do(loadRewriteRules)
	return typoRules
}

// Warm forces all lazily built lexicon state (rewrite rules, vocabulary) so
// that later per-query calls never pay the construction cost or hit a parse
// error. Called once at service construction.
func Warm() error {
	rewriteOnce.Do(loadRewriteRules)
	if rewriteErr != nil {
		return rewriteErr
	}
	Vocabulary()
	return nil
}
