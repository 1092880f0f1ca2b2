package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"equiscan/pkg/core/analysis"
)

// DefaultHistoryLimit is how many past analyses FetchRecent returns
// when the caller does not say otherwise.
const DefaultHistoryLimit = 6

// SaveStatus is the outcome of a save attempt. It is informational
// only: no status ever aborts the analysis that produced the record.
type SaveStatus string

const (
	// StatusSaved: the snapshot is durably stored.
	StatusSaved SaveStatus = "saved"
	// StatusSkipped: no store configured or the table is missing; the
	// degraded case, expected in a zero-config deployment.
	StatusSkipped SaveStatus = "skipped"
	// StatusFailed: the store exists but the write failed.
	StatusFailed SaveStatus = "failed"
)

// Gateway reads and writes stock_analyses snapshots.
type Gateway struct {
	store *Store
}

// NewGateway wraps a Store handle. The handle may be unconfigured.
func NewGateway(s *Store) *Gateway {
	return &Gateway{store: s}
}

// Save inserts a full snapshot of the record, keyed by a fresh id and
// the insertion timestamp. It never returns an error: every failure is
// logged and collapsed into a non-saved status, because a broken store
// must not break the analysis in the caller's hands.
func (g *Gateway) Save(ctx context.Context, rec *analysis.Record) SaveStatus {
	if !g.store.Configured() {
		log.Printf("[STORE] not configured, analysis for %s not saved", rec.Ticker)
		return StatusSkipped
	}

	snapshot, err := json.Marshal(rec)
	if err != nil {
		log.Printf("[STORE] failed to marshal analysis for %s: %v", rec.Ticker, err)
		return StatusFailed
	}

	query := `
		INSERT INTO stock_analyses (id, ticker, company_name, total_score, classification, full_analysis, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = g.store.pool.Exec(ctx, query,
		uuid.NewString(), rec.Ticker, rec.CompanyName, rec.TotalScore,
		string(rec.Classification), snapshot, time.Now().UTC())
	if err != nil {
		if isMissingTable(err) {
			log.Printf("[STORE] stock_analyses table missing, run db/schema.sql to enable history")
			return StatusSkipped
		}
		log.Printf("[STORE] insert failed for %s: %v", rec.Ticker, err)
		return StatusFailed
	}

	log.Printf("[STORE] saved analysis for %s (score %d)", rec.Ticker, rec.TotalScore)
	return StatusSaved
}

// FetchRecent returns up to limit past analyses, most recent first.
// Any storage error, including a missing table, yields an empty slice:
// history is decoration, not a dependency.
func (g *Gateway) FetchRecent(ctx context.Context, limit int) []*analysis.Record {
	if !g.store.Configured() {
		return nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query := `
		SELECT full_analysis
		FROM stock_analyses
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := g.store.pool.Query(ctx, query, limit)
	if err != nil {
		if isMissingTable(err) {
			log.Printf("[STORE] stock_analyses table missing, no history available")
		} else {
			log.Printf("[STORE] history query failed: %v", err)
		}
		return nil
	}
	defer rows.Close()

	var records []*analysis.Record
	for rows.Next() {
		var snapshot []byte
		if err := rows.Scan(&snapshot); err != nil {
			log.Printf("[STORE] history scan failed: %v", err)
			return records
		}
		var rec analysis.Record
		if err := json.Unmarshal(snapshot, &rec); err != nil {
			log.Printf("[STORE] skipping corrupt history row: %v", err)
			continue
		}
		if err := rec.Validate(); err != nil {
			log.Printf("[STORE] skipping invalid history row for %s: %v", rec.Ticker, err)
			continue
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[STORE] history iteration failed: %v", err)
	}
	return records
}

// isMissingTable recognizes the graceful-degradation case: the
// database is reachable but the schema was never applied. Postgres
// reports undefined_table as SQLSTATE 42P01; the message check covers
// proxied errors that strip the code.
func isMissingTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "42P01" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "does not exist") || strings.Contains(msg, "Could not find the table")
}
