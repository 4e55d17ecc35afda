// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/MarketLens/services/query"
	"github.com/AleutianAI/MarketLens/services/query/parse"
	"github.com/AleutianAI/MarketLens/services/query/search"
)

var (
	searchSegment string
	searchMax     int
)

var parseCmd = &cobra.Command{
	Use:   "parse <query>...",
	Short: "Parse a query and print the structured result as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Rank catalog cards for a query and print results as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchSegment, "segment", "", "User segment filter (beginner, long-term, active-trader, fno-trader)")
	searchCmd.Flags().IntVar(&searchMax, "max", 10, "Maximum results")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(searchCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	result := parse.Query(context.Background(), strings.Join(args, " "))
	return printJSON(result)
}

func runSearch(_ *cobra.Command, args []string) error {
	svc, err := query.NewService(query.DefaultServiceConfig())
	if err != nil {
		return fmt.Errorf("building query service: %w", err)
	}
	results := svc.Search().SmartSearch(context.Background(), strings.Join(args, " "), search.Options{
		Segment:    searchSegment,
		MaxResults: searchMax,
	})
	return printJSON(results)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
