package analysis

import "errors"

// Failure categories for the analyze pipeline. Handlers match these
// with errors.Is; the wrapped detail is for logs, the category message
// is safe to show a user.
var (
	// ErrInvalidInput: empty or whitespace-only identifier, rejected
	// before any outbound call.
	ErrInvalidInput = errors.New("please enter a ticker or company name")

	// ErrAnalysisUnavailable: the reasoning service could not produce a
	// response (network, auth, quota, or an empty payload).
	ErrAnalysisUnavailable = errors.New("failed to analyze stock, please try again or check the ticker")

	// ErrMalformedAnalysis: the service answered, but the structured
	// output violates the record contract. Never auto-repaired into a
	// partial record.
	ErrMalformedAnalysis = errors.New("the analysis came back incomplete, please try again")
)
