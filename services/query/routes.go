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
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the gin context key carrying the per-request id.
const requestIDKey = "request_id"

// RequestIDMiddleware assigns each request a uuid, honoring an inbound
// X-Request-ID header, and echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RegisterRoutes registers all query routes with the router.
//
// Description:
//
//	Registers all /v1/query/* endpoints with the given Gin router group.
//	The router group should already have any required middleware applied.
//
// Inputs:
//
//	rg - Gin router group (typically /v1)
//	handlers - The handlers instance
//
// Endpoints:
//
//	POST /v1/query/parse - Full query parse (filters, intent, modifiers)
//	POST /v1/query/search - Smart search over the card catalog
//	GET  /v1/query/quick - Substring autocomplete
//	POST /v1/query/suggestions - Contextual "what next" suggestions
//	POST /v1/query/workflow - Workflow-chain match for a query
//	GET  /v1/query/workflow/:tool - Workflow positions for a tool
//	GET  /v1/query/related/:id - Cards similar to a card
//	GET  /v1/query/cards - Catalog listing
//	GET  /v1/query/learning-path/:persona - Persona onboarding path
//	GET  /v1/query/health - Health check
//	GET  /v1/query/ready - Readiness check
//
// Example:
//
//	service, _ := query.NewService(query.DefaultServiceConfig())
//	handlers := query.NewHandlers(service)
//
//	v1 := router.Group("/v1")
//	query.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	q := rg.Group("/query")
	{
		q.POST("/parse", handlers.HandleParse)
		q.POST("/search", handlers.HandleSearch)
		q.GET("/quick", handlers.HandleQuick)

		q.POST("/suggestions", handlers.HandleSuggestions)
		q.POST("/workflow", handlers.HandleWorkflowSuggest)
		q.GET("/workflow/:tool", handlers.HandleWorkflowInfo)

		q.GET("/related/:id", handlers.HandleRelated)
		q.GET("/cards", handlers.HandleCards)
		q.GET("/learning-path/:persona", handlers.HandleLearningPath)

		q.GET("/health", handlers.HandleHealth)
		q.GET("/ready", handlers.HandleReady)
	}
}
