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

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Prometheus Metrics
// =============================================================================

var (
	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "marketlens",
		Subsystem: "parse",
		Name:      "query_duration_seconds",
		Help:      "Time to fully parse a query.",
		Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
	})

	correctionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketlens",
		Subsystem: "parse",
		Name:      "corrections_total",
		Help:      "Fuzzy and typo corrections applied to queries.",
	})

	intentMatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketlens",
		Subsystem: "parse",
		Name:      "intent_matches_total",
		Help:      "Intent matches emitted, by source.",
	}, []string{"source"})

	filtersExtractedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketlens",
		Subsystem: "parse",
		Name:      "screener_filters_total",
		Help:      "Screener filters extracted from queries.",
	})
)
