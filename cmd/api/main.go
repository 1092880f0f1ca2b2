package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"equiscan/pkg/api/analyze"
	"equiscan/pkg/core/config"
	"equiscan/pkg/core/llm"
	"equiscan/pkg/core/pipeline"
	"equiscan/pkg/core/store"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load("config/app.yaml")
	if err != nil {
		fmt.Printf("[WARNING] %v\n", err)
		fmt.Println("  Falling back to default configuration")
	}

	ctx := context.Background()

	// Secrets degrade, never abort: a missing database URL disables
	// history, a missing API key surfaces at analyze time.
	db, err := store.Open(ctx, os.Getenv("SUPABASE_DB_URL"))
	if err != nil {
		fmt.Printf("[WARNING] Store unavailable: %v\n", err)
		db = &store.Store{}
	}
	defer db.Close()
	gateway := store.NewGateway(db)

	client, err := llm.NewGeminiClient(ctx, os.Getenv("GEMINI_API_KEY"), cfg.Model)
	if err != nil {
		log.Fatalf("failed to initialize Gemini client: %v", err)
	}

	orch := pipeline.NewOrchestrator(client, gateway)
	orch.SetRequestTimeout(cfg.RequestTimeout())

	handler := analyze.NewHandler(orch, gateway, cfg.HistoryLimit)
	http.HandleFunc("/api/analyze", handler.HandleAnalyze)
	http.HandleFunc("/api/history", handler.HandleHistory)
	http.HandleFunc("/api/tickers", handler.HandleTickers)

	fmt.Printf("API server starting on %s...\n", cfg.ListenAddr)
	fmt.Println("  - POST /api/analyze")
	fmt.Println("  - GET  /api/history")
	fmt.Println("  - GET  /api/tickers")
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
