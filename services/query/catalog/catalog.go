// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package catalog holds the read-only card registry the query engine ranks
// against. The engine never mutates the catalog; the UI layer owns the cards
// themselves (rendering, lazy imports, mock data) and supplies only the
// descriptors here.
package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Embedded Default Card Catalog
// =============================================================================

//go:embed cards.yaml
var defaultCardsYAML []byte

// =============================================================================
// Card Descriptor
// =============================================================================

// Card describes one dashboard card as seen by the query engine.
//
// Description:
//
//	A card is a presentational analytics dashboard (valuation meter, option
//	chain, SIP planner, ...). The engine only reads the descriptor fields
//	that drive matching and ranking; everything else about a card lives in
//	the UI layer.
//
// Thread Safety: Immutable after catalog load.
type Card struct {
	// ID is the canonical card identifier (kebab-case, unique).
	ID string `yaml:"id" json:"id" validate:"required"`

	// Label is the display name shown in search results.
	Label string `yaml:"label" json:"label" validate:"required"`

	// Category groups cards (valuation, fno, technicals, funds, market, ...).
	Category string `yaml:"category" json:"category" validate:"required"`

	// Description is the one-line card summary used for substring matching.
	Description string `yaml:"description" json:"description"`

	// Tags drive lexical matching against query terms.
	Tags []string `yaml:"tags" json:"tags"`

	// Segments lists the user segments this card is aimed at. Empty means all.
	Segments []string `yaml:"segments" json:"segments,omitempty"`

	// Complexity is basic, intermediate, or advanced.
	Complexity string `yaml:"complexity" json:"complexity,omitempty" validate:"omitempty,oneof=basic intermediate advanced"`

	// Default marks cards shown on the home dashboard before personalization.
	Default bool `yaml:"default" json:"default,omitempty"`

	// HasEdgeMetric marks cards exposing win-rate/expectancy analytics.
	HasEdgeMetric bool `yaml:"has_edge_metric" json:"has_edge_metric,omitempty"`

	// HasRiskSizing marks cards exposing position/lot sizing analytics.
	HasRiskSizing bool `yaml:"has_risk_sizing" json:"has_risk_sizing,omitempty"`

	// HasBehavioralTip marks cards that surface behavioral-finance nudges.
	HasBehavioralTip bool `yaml:"has_behavioral_tip" json:"has_behavioral_tip,omitempty"`
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog is the immutable set of card descriptors.
//
// Description:
//
//	Built once from the embedded cards.yaml (or from caller-supplied cards
//	in tests). Lookup by id is O(1); iteration preserves file order, which
//	downstream ranking relies on for stable tie-breaks.
//
// Thread Safety: Safe for concurrent use after construction (read-only).
type Catalog struct {
	cards []Card
	byID  map[string]int
}

var validate = validator.New()

// Load parses and validates the embedded default card catalog.
//
// Description:
//
//	Unmarshals cards.yaml, validates every descriptor, and checks id
//	uniqueness. Called once at service construction.
//
// Outputs:
//
//	*Catalog - The loaded catalog. Never nil on success.
//	error - Non-nil if parsing or validation fails.
func Load() (*Catalog, error) {
	return LoadFrom(defaultCardsYAML)
}

// LoadFrom builds a Catalog from raw YAML bytes.
//
// Inputs:
//
//	data - YAML document with a top-level "cards" sequence.
//
// Outputs:
//
//	*Catalog - The validated catalog.
//	error - Non-nil if parsing fails, a descriptor is invalid, or ids repeat.
func LoadFrom(data []byte) (*Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("catalog: empty YAML data")
	}

	var doc struct {
		Cards []Card `yaml:"cards"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parsing cards.yaml: %w", err)
	}
	if len(doc.Cards) == 0 {
		return nil, fmt.Errorf("catalog: no cards defined")
	}

	byID := make(map[string]int, len(doc.Cards))
	for i, card := range doc.Cards {
		if err := validate.Struct(card); err != nil {
			return nil, fmt.Errorf("catalog: card[%d] (%s): %w", i, card.ID, err)
		}
		if prev, exists := byID[card.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate card id %q (cards %d and %d)", card.ID, prev, i)
		}
		byID[card.ID] = i
	}

	slog.Info("card catalog loaded", slog.Int("card_count", len(doc.Cards)))

	return &Catalog{cards: doc.Cards, byID: byID}, nil
}

// NewCatalog builds a Catalog from an in-memory card slice (tests, embedding
// callers). Duplicate ids keep the first occurrence.
func NewCatalog(cards []Card) *Catalog {
	byID := make(map[string]int, len(cards))
	for i, card := range cards {
		if _, exists := byID[card.ID]; !exists {
			byID[card.ID] = i
		}
	}
	return &Catalog{cards: cards, byID: byID}
}

// Cards returns the descriptors in catalog order.
//
// Ownership: the returned slice is shared; callers must not mutate it.
func (c *Catalog) Cards() []Card {
	return c.cards
}

// Get returns the card with the given id.
//
// Outputs:
//
//	Card - The descriptor (zero value when not found).
//	bool - True if the id exists.
func (c *Catalog) Get(id string) (Card, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// Has reports whether the id exists in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	return len(c.cards)
}
