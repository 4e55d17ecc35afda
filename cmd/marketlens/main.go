// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command marketlens runs the MarketLens query-understanding service.
//
// Usage:
//
//	go run ./cmd/marketlens serve
//	go run ./cmd/marketlens serve --port 9090 --debug
//	go run ./cmd/marketlens parse "stocks with pe below 15"
//	go run ./cmd/marketlens search "option chain"
//
// Example requests against a running server:
//
//	# Health check
//	curl http://localhost:8080/v1/query/health
//
//	# Parse a query
//	curl -X POST http://localhost:8080/v1/query/parse \
//	  -H "Content-Type: application/json" \
//	  -d '{"query": "stocks with PE < 15 and ROE > 20"}'
//
//	# Smart search
//	curl -X POST http://localhost:8080/v1/query/search \
//	  -H "Content-Type: application/json" \
//	  -d '{"query": "calculate position size", "segment": "fno-trader"}'
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marketlens",
	Short: "MarketLens query-understanding service",
	Long: "MarketLens turns free-text trader queries into screener filters,\n" +
		"intent matches, ranked card suggestions, and workflow recommendations.",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
