// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package query wires the query-understanding engine (lexicon, parser,
// search, suggestions) into a service with HTTP handlers.
package query

import (
	"fmt"
	"log/slog"

	"github.com/AleutianAI/MarketLens/services/query/catalog"
	"github.com/AleutianAI/MarketLens/services/query/lexicon"
	"github.com/AleutianAI/MarketLens/services/query/search"
)

// =============================================================================
// Service
// =============================================================================

// ServiceConfig configures service construction.
type ServiceConfig struct {
	// Logger for service lifecycle and per-request logs. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// CatalogYAML overrides the embedded card catalog when non-empty.
	CatalogYAML []byte
}

// DefaultServiceConfig returns a config using the embedded catalog.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{}
}

// Service owns the loaded catalog and the search engine. All per-query
// operations are stateless; the service exists to do one-time loading and
// to hang HTTP handlers off.
//
// Thread Safety: Safe for concurrent use after construction.
type Service struct {
	catalog *catalog.Catalog
	search  *search.Engine
	logger  *slog.Logger
}

// NewService loads every table eagerly and builds the engine.
//
// Description:
//
//	Warms the lexicon (rewrite rules, vocabulary) and loads the card
//	catalog so that per-query paths never pay construction cost or hit a
//	parse error. Construction is the only place this subsystem can fail.
//
// Outputs:
//
//	*Service - The ready service.
//	error - Non-nil when a table fails to load or validate.
func NewService(cfg ServiceConfig) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := lexicon.Warm(); err != nil {
		return nil, fmt.Errorf("query: warming lexicon: %w", err)
	}

	var cat *catalog.Catalog
	var err error
	if len(cfg.CatalogYAML) > 0 {
		cat, err = catalog.LoadFrom(cfg.CatalogYAML)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("query: loading catalog: %w", err)
	}

	logger.Info("query service ready",
		slog.Int("cards", cat.Len()),
		slog.Int("vocabulary_words", lexicon.Vocabulary().Len()))

	return &Service{
		catalog: cat,
		search:  search.NewEngine(cat, logger),
		logger:  logger,
	}, nil
}

// Catalog returns the loaded card catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Search returns the search engine.
func (s *Service) Search() *search.Engine {
	return s.search
}
