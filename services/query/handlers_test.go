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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// makeTestRouter wires a full service behind the real routes.
func makeTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service, err := NewService(DefaultServiceConfig())
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	router := gin.New()
	router.Use(RequestIDMiddleware())
	RegisterRoutes(router.Group("/v1"), NewHandlers(service))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleParse(t *testing.T) {
	router := makeTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/query/parse",
		`{"query": "sotcks with pe ration less than 15"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result struct {
		Corrected       string `json:"corrected"`
		ScreenerFilters []struct {
			Metric   string `json:"metric"`
			Operator string `json:"operator"`
		} `json:"screener_filters"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.Contains(result.Corrected, "stocks") {
		t.Errorf("corrected = %q, want typo fixed", result.Corrected)
	}
	if len(result.ScreenerFilters) != 1 || result.ScreenerFilters[0].Metric != "pe_ratio" {
		t.Errorf("filters = %+v, want one pe_ratio filter", result.ScreenerFilters)
	}

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}
}

func TestHandleParse_MissingQuery(t *testing.T) {
	router := makeTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/query/parse", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if errResp.Code != "MISSING_QUERY" {
		t.Errorf("error code = %q, want MISSING_QUERY", errResp.Code)
	}
}

func TestHandleSearch(t *testing.T) {
	router := makeTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/query/search",
		`{"query": "calculate position size for 2L capital", "max_results": 3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		Results []struct {
			Card struct {
				ID string `json:"id"`
			} `json:"card"`
			Score float64 `json:"score"`
		} `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Results) == 0 || len(body.Results) > 3 {
		t.Fatalf("got %d results, want 1..3", len(body.Results))
	}
	if body.Results[0].Card.ID != "fno-risk-advisor" {
		t.Errorf("top result = %q, want fno-risk-advisor", body.Results[0].Card.ID)
	}
}

func TestHandleSearch_ErrorSuggestionsOnEmpty(t *testing.T) {
	router := makeTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/query/search", `{"query": "xjqz vvkw blorp"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		Results          []json.RawMessage `json:"results"`
		ErrorSuggestions []string          `json:"error_suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(body.Results))
	}
	if len(body.ErrorSuggestions) == 0 {
		t.Error("empty result set carried no error_suggestions")
	}
}

func TestHandleQuick_MissingParam(t *testing.T) {
	router := makeTestRouter(t)

	if w := doJSON(t, router, http.MethodGet, "/v1/query/quick", ""); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/v1/query/quick?q=option", ""); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestHandleWorkflowInfo(t *testing.T) {
	router := makeTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/query/workflow/fno-risk-advisor", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var info struct {
		InWorkflow bool `json:"in_workflow"`
		Positions  []struct {
			Workflow string `json:"workflow"`
			Position string `json:"position"`
		} `json:"positions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !info.InWorkflow || len(info.Positions) < 2 {
		t.Errorf("workflow info = %+v, want membership in at least two chains", info)
	}
}

func TestHandleLearningPath_UnknownPersona(t *testing.T) {
	router := makeTestRouter(t)

	if w := doJSON(t, router, http.MethodGet, "/v1/query/learning-path/beginner", ""); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w := doJSON(t, router, http.MethodGet, "/v1/query/learning-path/nobody", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHealthAndReady(t *testing.T) {
	router := makeTestRouter(t)

	if w := doJSON(t, router, http.MethodGet, "/v1/query/health", ""); w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/v1/query/ready", "")
	if w.Code != http.StatusOK {
		t.Fatalf("ready status = %d", w.Code)
	}
	var body struct {
		Cards int `json:"cards"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Cards == 0 {
		t.Error("ready reported zero cards")
	}
}

func TestRequestIDMiddleware_HonorsInbound(t *testing.T) {
	router := makeTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/query/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("X-Request-ID = %q, want inbound id echoed", got)
	}
}
