package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"equiscan/pkg/core/analysis"
)

func sampleRecord() *analysis.Record {
	scores := make([]analysis.ScoreParameter, analysis.NumDimensions)
	for i, dim := range analysis.Dimensions {
		scores[i] = analysis.ScoreParameter{Parameter: dim, Score: 8, Reason: "ok"}
	}
	total := 8 * analysis.NumDimensions
	return &analysis.Record{
		CompanyName:    "Apple Inc.",
		Ticker:         "AAPL",
		Sector:         "Technology",
		MarketCap:      "$3.4T",
		RiskSignals:    []string{analysis.NoRedFlagsSentinel},
		Scores:         scores,
		TotalScore:     total,
		Classification: analysis.Classify(total),
	}
}

func TestSaveWithoutStoreIsSkipped(t *testing.T) {
	g := NewGateway(&Store{})
	if status := g.Save(context.Background(), sampleRecord()); status != StatusSkipped {
		t.Errorf("Save status = %q, want %q", status, StatusSkipped)
	}
}

func TestFetchRecentWithoutStoreIsEmpty(t *testing.T) {
	g := NewGateway(&Store{})
	if records := g.FetchRecent(context.Background(), DefaultHistoryLimit); len(records) != 0 {
		t.Errorf("FetchRecent returned %d records from an unconfigured store", len(records))
	}
}

func TestOpenWithEmptyURL(t *testing.T) {
	s, err := Open(context.Background(), "")
	if err != nil {
		t.Fatalf("Open(\"\") errored: %v", err)
	}
	if s.Configured() {
		t.Error("empty URL produced a configured store")
	}
}

func TestIsMissingTable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"undefined_table code", &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}, true},
		{"message only", errors.New(`relation "stock_analyses" does not exist`), true},
		{"supabase phrasing", errors.New("Could not find the table 'public.stock_analyses'"), true},
		{"auth failure", &pgconn.PgError{Code: "28P01", Message: "password authentication failed"}, false},
		{"network failure", errors.New("connection refused"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := isMissingTable(c.err); got != c.want {
				t.Errorf("isMissingTable(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}
