package analysis

import "fmt"

// Validate checks every invariant a finished Record must hold. The
// normalizer establishes these while building the record; Validate is
// the single place they are stated, and is what tests and the store
// read path use to refuse corrupt data.
func (r *Record) Validate() error {
	if r.CompanyName == "" || r.Ticker == "" {
		return fmt.Errorf("record missing company identity")
	}
	if len(r.Scores) != NumDimensions {
		return fmt.Errorf("expected %d score parameters, got %d", NumDimensions, len(r.Scores))
	}
	sum := 0
	for i, s := range r.Scores {
		if s.Score < 1 || s.Score > 10 {
			return fmt.Errorf("score %d (%q) out of range: %d", i, s.Parameter, s.Score)
		}
		sum += s.Score
	}
	if r.TotalScore != sum {
		return fmt.Errorf("totalScore %d does not match score sum %d", r.TotalScore, sum)
	}
	if r.Classification != Classify(r.TotalScore) {
		return fmt.Errorf("classification %q does not match total score %d", r.Classification, r.TotalScore)
	}
	if len(r.RiskSignals) == 0 {
		return fmt.Errorf("riskSignals must not be empty")
	}
	if len(r.RiskSignals) > 1 {
		for _, s := range r.RiskSignals {
			if s == NoRedFlagsSentinel {
				return fmt.Errorf("risk sentinel mixed with real signals")
			}
		}
	}
	seen := make(map[string]bool, len(r.GroundingURLs))
	for _, u := range r.GroundingURLs {
		if seen[u] {
			return fmt.Errorf("duplicate grounding url: %s", u)
		}
		seen[u] = true
	}
	return nil
}
