// Package pipeline sequences one analysis request end to end:
// assemble -> invoke -> normalize, then a detached best-effort save.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"equiscan/pkg/core/analysis"
	"equiscan/pkg/core/llm"
	"equiscan/pkg/core/normalize"
	"equiscan/pkg/core/prompt"
	"equiscan/pkg/core/store"
)

// Invoker issues the assembled request to the reasoning service.
type Invoker interface {
	Invoke(ctx context.Context, req prompt.Request) (*llm.RawAnalysis, error)
}

// Saver persists a finished record. Implementations must not fail the
// caller: outcomes are reported as a status, not an error.
type Saver interface {
	Save(ctx context.Context, rec *analysis.Record) store.SaveStatus
}

const (
	defaultRequestTimeout = 120 * time.Second
	saveTimeout           = 30 * time.Second
)

// Orchestrator is the single entry point the presentation layer calls.
// It serves one analysis at a time per caller; the only concurrency it
// introduces is the detached save.
type Orchestrator struct {
	invoker        Invoker
	saver          Saver
	requestTimeout time.Duration
}

// NewOrchestrator wires the pipeline dependencies.
func NewOrchestrator(invoker Invoker, saver Saver) *Orchestrator {
	return &Orchestrator{
		invoker:        invoker,
		saver:          saver,
		requestTimeout: defaultRequestTimeout,
	}
}

// SetRequestTimeout bounds the reasoning-service call. Expiry surfaces
// as the same unavailable error as any other service failure.
func (o *Orchestrator) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		o.requestTimeout = d
	}
}

// Analyze runs the full pipeline for a ticker or company name and
// returns the finished record. Failures from the service or the
// normalizer propagate unchanged; no partial record is ever returned.
// The save of a successful record happens on its own goroutine with its
// own context and deadline, so a slow or dead store never delays or
// fails the result.
func (o *Orchestrator) Analyze(ctx context.Context, identifier string) (*analysis.Record, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, analysis.ErrInvalidInput
	}

	req := prompt.Assemble(identifier)

	cctx, cancel := context.WithTimeout(ctx, o.requestTimeout)
	defer cancel()

	raw, err := o.invoker.Invoke(cctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, analysis.ErrAnalysisUnavailable) {
			return nil, fmt.Errorf("%w: request timed out", analysis.ErrAnalysisUnavailable)
		}
		return nil, err
	}

	rec, err := normalize.Normalize(raw)
	if err != nil {
		return nil, err
	}

	if o.saver != nil {
		go func() {
			sctx, scancel := context.WithTimeout(context.Background(), saveTimeout)
			defer scancel()
			status := o.saver.Save(sctx, rec)
			log.Printf("[PIPELINE] background save for %s: %s", rec.Ticker, status)
		}()
	}

	return rec, nil
}
