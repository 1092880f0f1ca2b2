// Package analyze exposes the analysis pipeline over HTTP for the web
// frontend: run an analysis, list recent ones, autocomplete tickers.
package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"equiscan/pkg/core/analysis"
	"equiscan/pkg/core/stocklist"
	"equiscan/pkg/report"
)

// Analyzer is the pipeline entry point the handler drives.
type Analyzer interface {
	Analyze(ctx context.Context, identifier string) (*analysis.Record, error)
}

// HistoryReader lists recently stored analyses.
type HistoryReader interface {
	FetchRecent(ctx context.Context, limit int) []*analysis.Record
}

// Handler serves the analysis API.
type Handler struct {
	analyzer     Analyzer
	history      HistoryReader
	historyLimit int
}

// NewHandler wires the handler dependencies.
func NewHandler(analyzer Analyzer, history HistoryReader, historyLimit int) *Handler {
	return &Handler{analyzer: analyzer, history: history, historyLimit: historyLimit}
}

type analyzeRequest struct {
	Identifier string `json:"identifier"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func cors(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// HandleAnalyze runs one analysis. POST {"identifier": "AAPL"};
// ?format=html returns the rendered report instead of the record JSON.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST") {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: analysis.ErrInvalidInput.Error()})
		return
	}

	rec, err := h.analyzer.Analyze(r.Context(), req.Identifier)
	if err != nil {
		status, msg := classifyError(err)
		writeJSON(w, status, errorResponse{Message: msg})
		return
	}

	if r.URL.Query().Get("format") == "html" {
		html, err := report.HTML(rec)
		if err != nil {
			log.Printf("[API] report render failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "failed to render report"})
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// HandleHistory returns recent analyses, most recent first. Storage
// problems show up as an empty list, never an error.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}
	records := h.history.FetchRecent(r.Context(), h.historyLimit)
	if records == nil {
		records = []*analysis.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

// HandleTickers serves the autocomplete list: GET /api/tickers?q=app.
func (h *Handler) HandleTickers(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	matches := stocklist.Search(r.URL.Query().Get("q"), limit)
	if matches == nil {
		matches = []stocklist.Option{}
	}
	writeJSON(w, http.StatusOK, matches)
}

// classifyError maps pipeline failures onto a status code and the
// user-safe category message; underlying causes stay in the logs.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, analysis.ErrInvalidInput):
		return http.StatusBadRequest, analysis.ErrInvalidInput.Error()
	case errors.Is(err, analysis.ErrMalformedAnalysis):
		log.Printf("[API] malformed analysis: %v", err)
		return http.StatusBadGateway, analysis.ErrMalformedAnalysis.Error()
	case errors.Is(err, analysis.ErrAnalysisUnavailable):
		log.Printf("[API] analysis unavailable: %v", err)
		return http.StatusBadGateway, analysis.ErrAnalysisUnavailable.Error()
	default:
		log.Printf("[API] unexpected analyze error: %v", err)
		return http.StatusInternalServerError, "an unexpected error occurred while analyzing the stock"
	}
}
