package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"equiscan/pkg/core/analysis"
	"equiscan/pkg/core/llm"
	"equiscan/pkg/core/prompt"
	"equiscan/pkg/core/store"
)

// --- Mocks ---

type MockInvoker struct {
	InvokeFunc func(ctx context.Context, req prompt.Request) (*llm.RawAnalysis, error)
	Calls      int
}

func (m *MockInvoker) Invoke(ctx context.Context, req prompt.Request) (*llm.RawAnalysis, error) {
	m.Calls++
	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, req)
	}
	return validRaw(92), nil
}

type MockSaver struct {
	SaveFunc func(ctx context.Context, rec *analysis.Record) store.SaveStatus
	Saved    chan *analysis.Record
}

func NewMockSaver() *MockSaver {
	return &MockSaver{Saved: make(chan *analysis.Record, 1)}
}

func (m *MockSaver) Save(ctx context.Context, rec *analysis.Record) store.SaveStatus {
	if m.Saved != nil {
		m.Saved <- rec
	}
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, rec)
	}
	return store.StatusSaved
}

// validRaw builds a service payload with 11 scores summing to total.
func validRaw(total int) *llm.RawAnalysis {
	scores := make([]map[string]interface{}, analysis.NumDimensions)
	remaining := total
	for i, dim := range analysis.Dimensions {
		left := analysis.NumDimensions - i - 1
		s := remaining - left
		if s > 10 {
			s = 10
		}
		if s < 1 {
			s = 1
		}
		scores[i] = map[string]interface{}{"parameter": dim, "score": s, "reason": "ok"}
		remaining -= s
	}
	payload := map[string]interface{}{
		"companyName":     "Apple Inc.",
		"ticker":          "AAPL",
		"sector":          "Technology",
		"marketCap":       "$3.4T",
		"businessSummary": "Devices and services.",
		"latestNews":      []string{"Quarterly results out."},
		"riskSignals":     []string{analysis.NoRedFlagsSentinel},
		"scoreTrend":      "Stable",
		"scores":          scores,
		"totalScore":      total,
		"classification":  "Strong",
		"investmentSummary": map[string]string{
			"businessStrength":  "Moat",
			"keyRisks":          "Cycles",
			"quarterlyTracking": "Margins",
			"volatilityNote":    "Low",
		},
	}
	data, _ := json.Marshal(payload)
	return &llm.RawAnalysis{JSON: string(data)}
}

// --- Tests ---

func TestAnalyzeRejectsBlankIdentifier(t *testing.T) {
	invoker := &MockInvoker{}
	orch := NewOrchestrator(invoker, NewMockSaver())

	for _, id := range []string{"", "   ", "\t\n"} {
		_, err := orch.Analyze(context.Background(), id)
		if !errors.Is(err, analysis.ErrInvalidInput) {
			t.Errorf("Analyze(%q) err = %v, want ErrInvalidInput", id, err)
		}
	}
	if invoker.Calls != 0 {
		t.Errorf("invoker called %d times for blank identifiers", invoker.Calls)
	}
}

func TestAnalyzeHappyPathAndBackgroundSave(t *testing.T) {
	saver := NewMockSaver()
	orch := NewOrchestrator(&MockInvoker{}, saver)

	rec, err := orch.Analyze(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if rec.TotalScore != 92 {
		t.Errorf("TotalScore = %d, want 92", rec.TotalScore)
	}
	if rec.Classification != analysis.HighQuality {
		t.Errorf("Classification = %q, want %q", rec.Classification, analysis.HighQuality)
	}

	select {
	case saved := <-saver.Saved:
		if saved != rec {
			t.Error("saver received a different record than the caller")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("save was never dispatched")
	}
}

func TestAnalyzeServiceFailurePropagates(t *testing.T) {
	invoker := &MockInvoker{
		InvokeFunc: func(ctx context.Context, req prompt.Request) (*llm.RawAnalysis, error) {
			return nil, fmt.Errorf("%w: quota exceeded", analysis.ErrAnalysisUnavailable)
		},
	}
	saver := NewMockSaver()
	orch := NewOrchestrator(invoker, saver)

	_, err := orch.Analyze(context.Background(), "AAPL")
	if !errors.Is(err, analysis.ErrAnalysisUnavailable) {
		t.Errorf("err = %v, want ErrAnalysisUnavailable", err)
	}
	select {
	case <-saver.Saved:
		t.Error("failed analysis must not be persisted")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAnalyzeMalformedPayloadPropagates(t *testing.T) {
	invoker := &MockInvoker{
		InvokeFunc: func(ctx context.Context, req prompt.Request) (*llm.RawAnalysis, error) {
			raw := validRaw(80)
			raw.JSON = `{"ticker": "AAPL"}`
			return raw, nil
		},
	}
	saver := NewMockSaver()
	orch := NewOrchestrator(invoker, saver)

	_, err := orch.Analyze(context.Background(), "AAPL")
	if !errors.Is(err, analysis.ErrMalformedAnalysis) {
		t.Errorf("err = %v, want ErrMalformedAnalysis", err)
	}
	select {
	case <-saver.Saved:
		t.Error("malformed analysis must not be persisted")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAnalyzeResultUnaffectedByFailingSaver(t *testing.T) {
	saver := NewMockSaver()
	saver.SaveFunc = func(ctx context.Context, rec *analysis.Record) store.SaveStatus {
		return store.StatusFailed
	}
	orch := NewOrchestrator(&MockInvoker{}, saver)

	rec, err := orch.Analyze(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Analyze failed despite saver being irrelevant: %v", err)
	}
	if err := rec.Validate(); err != nil {
		t.Errorf("record invalid: %v", err)
	}
	<-saver.Saved
}

func TestAnalyzeDoesNotBlockOnSlowSaver(t *testing.T) {
	release := make(chan struct{})
	saver := &MockSaver{
		SaveFunc: func(ctx context.Context, rec *analysis.Record) store.SaveStatus {
			<-release
			return store.StatusSaved
		},
	}
	orch := NewOrchestrator(&MockInvoker{}, saver)

	done := make(chan struct{})
	go func() {
		if _, err := orch.Analyze(context.Background(), "AAPL"); err != nil {
			t.Errorf("Analyze failed: %v", err)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Analyze blocked on the save path")
	}
	close(release)
}

func TestAnalyzeTimeoutSurfacesAsUnavailable(t *testing.T) {
	invoker := &MockInvoker{
		InvokeFunc: func(ctx context.Context, req prompt.Request) (*llm.RawAnalysis, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	orch := NewOrchestrator(invoker, NewMockSaver())
	orch.SetRequestTimeout(20 * time.Millisecond)

	_, err := orch.Analyze(context.Background(), "AAPL")
	if !errors.Is(err, analysis.ErrAnalysisUnavailable) {
		t.Errorf("err = %v, want ErrAnalysisUnavailable", err)
	}
}
