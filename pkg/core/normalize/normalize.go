// Package normalize turns the raw service payload into a validated,
// immutable analysis Record. Nothing here touches the network or the
// store; a payload that violates the contract is rejected, never
// silently completed.
package normalize

import (
	"fmt"
	"log"

	"equiscan/pkg/core/analysis"
	"equiscan/pkg/core/jsonutil"
	"equiscan/pkg/core/llm"
)

// payload mirrors the response schema with pointer fields where "absent"
// and "zero" must be told apart.
type payload struct {
	CompanyName     *string                     `json:"companyName"`
	Ticker          *string                     `json:"ticker"`
	Sector          *string                     `json:"sector"`
	MarketCap       *string                     `json:"marketCap"`
	BusinessSummary *string                     `json:"businessSummary"`
	LatestNews      []string                    `json:"latestNews"`
	RiskSignals     []string                    `json:"riskSignals"`
	ScoreTrend      *string                     `json:"scoreTrend"`
	Scores          []analysis.ScoreParameter   `json:"scores"`
	TotalScore      *int                        `json:"totalScore"`
	Classification  *string                     `json:"classification"`
	Summary         *analysis.InvestmentSummary `json:"investmentSummary"`
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", analysis.ErrMalformedAnalysis, fmt.Sprintf(format, args...))
}

// Normalize parses, validates and enriches the raw payload.
//
// Hardening beyond what the upstream service guarantees: the score sum
// is recomputed and a totalScore mismatch aborts, and the
// classification bucket is always derived from the total score here,
// whatever tier the payload claims.
func Normalize(raw *llm.RawAnalysis) (*analysis.Record, error) {
	if raw == nil || raw.JSON == "" {
		return nil, malformed("empty payload")
	}

	var p payload
	if err := jsonutil.Decode(raw.JSON, &p); err != nil {
		return nil, malformed("%v", err)
	}
	if err := checkRequired(&p); err != nil {
		return nil, err
	}

	if len(p.Scores) != analysis.NumDimensions {
		return nil, malformed("expected %d scores, got %d", analysis.NumDimensions, len(p.Scores))
	}
	sum := 0
	for i, s := range p.Scores {
		if s.Score < 1 || s.Score > 10 {
			return nil, malformed("score %d (%q) out of range: %d", i, s.Parameter, s.Score)
		}
		sum += s.Score
	}
	if sum != *p.TotalScore {
		return nil, malformed("totalScore %d does not match score sum %d", *p.TotalScore, sum)
	}

	signals := resolveRiskSignals(p.RiskSignals)

	rec := &analysis.Record{
		CompanyName:     *p.CompanyName,
		Ticker:          *p.Ticker,
		Sector:          *p.Sector,
		MarketCap:       *p.MarketCap,
		BusinessSummary: *p.BusinessSummary,
		LatestNews:      p.LatestNews,
		RiskSignals:     signals,
		ScoreTrend:      *p.ScoreTrend,
		Scores:          p.Scores,
		TotalScore:      sum,
		Classification:  analysis.Classify(sum),
		Summary:         *p.Summary,
		GroundingURLs:   dedupeURLs(raw.Citations),
	}
	if err := rec.Validate(); err != nil {
		return nil, malformed("%v", err)
	}
	return rec, nil
}

func checkRequired(p *payload) error {
	required := map[string]*string{
		"companyName":     p.CompanyName,
		"ticker":          p.Ticker,
		"sector":          p.Sector,
		"marketCap":       p.MarketCap,
		"businessSummary": p.BusinessSummary,
		"scoreTrend":      p.ScoreTrend,
	}
	for name, v := range required {
		if v == nil || *v == "" {
			return malformed("required field %q is missing", name)
		}
	}
	if p.Scores == nil {
		return malformed("required field \"scores\" is missing")
	}
	if p.TotalScore == nil {
		return malformed("required field \"totalScore\" is missing")
	}
	if p.Classification == nil || *p.Classification == "" {
		return malformed("required field \"classification\" is missing")
	}
	if p.Summary == nil {
		return malformed("required field \"investmentSummary\" is missing")
	}
	if len(p.LatestNews) == 0 {
		return malformed("required field \"latestNews\" is missing")
	}
	if len(p.RiskSignals) == 0 {
		return malformed("required field \"riskSignals\" is missing or empty")
	}
	return nil
}

// resolveRiskSignals applies the sentinel policy: a list that mixes the
// "no red flags" placeholder with real signals keeps the signals and
// drops the placeholder, since the two are contradictory.
func resolveRiskSignals(signals []string) []string {
	if len(signals) == 1 {
		return signals
	}
	filtered := signals[:0:0]
	dropped := 0
	for _, s := range signals {
		if s == analysis.NoRedFlagsSentinel {
			dropped++
			continue
		}
		filtered = append(filtered, s)
	}
	if dropped == 0 {
		return signals
	}
	if len(filtered) == 0 {
		// The list was nothing but repeated sentinels.
		return []string{analysis.NoRedFlagsSentinel}
	}
	log.Printf("[NORMALIZE] dropped no-red-flags sentinel from %d real risk signals", len(filtered))
	return filtered
}

// dedupeURLs collapses duplicate citation URIs, keeping first-seen
// order. No citations is a valid outcome, not an error.
func dedupeURLs(citations []llm.Citation) []string {
	if len(citations) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(citations))
	var urls []string
	for _, c := range citations {
		if c.URI == "" || seen[c.URI] {
			continue
		}
		seen[c.URI] = true
		urls = append(urls, c.URI)
	}
	return urls
}
