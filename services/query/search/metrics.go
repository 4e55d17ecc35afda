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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Prometheus Metrics
// =============================================================================

var (
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "marketlens",
		Subsystem: "search",
		Name:      "duration_seconds",
		Help:      "Time to run a smart search over the catalog.",
		Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
	})

	searchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "marketlens",
		Subsystem: "search",
		Name:      "result_count",
		Help:      "Results returned per smart search.",
		Buckets:   prometheus.LinearBuckets(0, 2, 11),
	})
)
