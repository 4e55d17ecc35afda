// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package query

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/MarketLens/services/query/lexicon"
	"github.com/AleutianAI/MarketLens/services/query/parse"
	"github.com/AleutianAI/MarketLens/services/query/search"
	"github.com/AleutianAI/MarketLens/services/query/suggest"
)

// =============================================================================
// Handlers
// =============================================================================

// Handlers exposes the query engine over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates the handler set for a service.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// ErrorResponse is the JSON error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// getOrCreateRequestID returns the request id set by middleware, minting one
// if the middleware is absent (tests hitting handlers directly).
func getOrCreateRequestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	id := uuid.NewString()
	c.Set(requestIDKey, id)
	return id
}

// ParseRequest is the body for POST /v1/query/parse.
type ParseRequest struct {
	Query string `json:"query" binding:"required"`
}

// HandleParse handles POST /v1/query/parse.
//
// Description:
//
//	Runs the full parse pipeline and returns the structured result. The
//	parse itself cannot fail; only a missing query is rejected.
//
// Response:
//
//	200 OK: ParsedQuery
//	400 Bad Request: missing query
func (h *Handlers) HandleParse(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.service.logger.With(slog.String("request_id", requestID), slog.String("handler", "HandleParse"))

	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "query field is required",
			Code:  "MISSING_QUERY",
		})
		return
	}

	result := parse.Query(c.Request.Context(), req.Query)
	logger.Info("query parsed",
		slog.Int("corrections", len(result.Corrections)),
		slog.Int("filters", len(result.ScreenerFilters)),
		slog.String("intent", result.PrimaryIntent))
	c.JSON(http.StatusOK, result)
}

// SearchRequest is the body for POST /v1/query/search.
type SearchRequest struct {
	Query      string `json:"query" binding:"required"`
	Segment    string `json:"segment"`
	Complexity string `json:"complexity"`
	Category   string `json:"category"`
	MaxResults int    `json:"max_results"`
}

// HandleSearch handles POST /v1/query/search.
//
// Response:
//
//	200 OK: {"results": [SearchResult], "error_suggestions": [...]} where
//	error_suggestions is only present when results is empty.
//	400 Bad Request: missing query
func (h *Handlers) HandleSearch(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.service.logger.With(slog.String("request_id", requestID), slog.String("handler", "HandleSearch"))

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "query field is required",
			Code:  "MISSING_QUERY",
		})
		return
	}

	results := h.service.search.SmartSearch(c.Request.Context(), req.Query, search.Options{
		Segment:    req.Segment,
		Complexity: req.Complexity,
		Category:   req.Category,
		MaxResults: req.MaxResults,
	})

	body := gin.H{"results": results}
	if len(results) == 0 {
		body["error_suggestions"] = lexicon.ErrorSuggestions
	}
	logger.Info("search complete", slog.Int("results", len(results)))
	c.JSON(http.StatusOK, body)
}

// HandleQuick handles GET /v1/query/quick?q=&limit=.
//
// Response:
//
//	200 OK: {"cards": [CardDescriptor]}
//	400 Bad Request: missing q
func (h *Handlers) HandleQuick(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "q parameter is required",
			Code:  "MISSING_PARAMETER",
		})
		return
	}
	limit := parseLimit(c.Query("limit"), 5)
	c.JSON(http.StatusOK, gin.H{"cards": h.service.search.QuickSearch(q, limit)})
}

// HandleSuggestions handles POST /v1/query/suggestions.
//
// Response:
//
//	200 OK: {"suggestions": [Suggestion]}
func (h *Handlers) HandleSuggestions(c *gin.Context) {
	var uc suggest.UserContext
	if err := c.ShouldBindJSON(&uc); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid context body",
			Code:  "INVALID_BODY",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggest.Suggestions(c.Request.Context(), uc)})
}

// WorkflowRequest is the body for POST /v1/query/workflow.
type WorkflowRequest struct {
	Query string `json:"query" binding:"required"`
}

// HandleWorkflowSuggest handles POST /v1/query/workflow.
//
// Response:
//
//	200 OK: {"matched": bool, "workflow": ..., "trigger": ...}
//	400 Bad Request: missing query
func (h *Handlers) HandleWorkflowSuggest(c *gin.Context) {
	var req WorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "query field is required",
			Code:  "MISSING_QUERY",
		})
		return
	}

	m, ok := suggest.SuggestWorkflow(req.Query)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"matched": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matched": true, "workflow": m.Workflow, "trigger": m.Trigger})
}

// HandleWorkflowInfo handles GET /v1/query/workflow/:tool.
//
// Response:
//
//	200 OK: ToolWorkflowInfo (InWorkflow=false for unknown tools)
func (h *Handlers) HandleWorkflowInfo(c *gin.Context) {
	c.JSON(http.StatusOK, suggest.GetToolWorkflowInfo(c.Param("tool")))
}

// HandleRelated handles GET /v1/query/related/:id?limit=.
//
// Response:
//
//	200 OK: {"related": [Related]} (empty for unknown ids)
func (h *Handlers) HandleRelated(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 4)
	c.JSON(http.StatusOK, gin.H{"related": h.service.search.RelatedCards(c.Param("id"), limit)})
}

// HandleCards handles GET /v1/query/cards.
//
// Response:
//
//	200 OK: {"cards": [CardDescriptor]}
func (h *Handlers) HandleCards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cards": h.service.catalog.Cards()})
}

// HandleLearningPath handles GET /v1/query/learning-path/:persona.
//
// Response:
//
//	200 OK: LearningPath
//	404 Not Found: unknown persona
func (h *Handlers) HandleLearningPath(c *gin.Context) {
	lp, ok := suggest.GetLearningPath(c.Param("persona"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "unknown persona",
			Code:  "UNKNOWN_PERSONA",
		})
		return
	}
	c.JSON(http.StatusOK, lp)
}

// HandleHealth handles GET /v1/query/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// HandleReady handles GET /v1/query/ready. The service loads everything at
// construction, so existence implies readiness.
func (h *Handlers) HandleReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"cards":  h.service.catalog.Len(),
	})
}

func parseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
