// Package prompt builds the instruction payload and output-schema
// descriptor for the analysis request. Assembly is pure string/struct
// construction: deterministic for a given identifier, no side effects.
package prompt

import (
	"fmt"
	"strings"

	"equiscan/pkg/core/analysis"
)

// SystemPersona frames the model as an educator rather than a signal
// generator; it shapes register, not content.
const SystemPersona = "You are a helpful investment mentor. Your goal is to educate retail investors and help them make calm, long-term decisions. Use friendly, accessible language."

// Request is the fully assembled payload handed to the analysis client.
type Request struct {
	Instruction string
	System      string
}

// Assemble produces the analysis instruction for a ticker or company
// name. The dimension list, threshold table and risk checklist are
// spelled out in the text and mirrored by ResponseSchema, so the model
// is constrained twice: once in prose, once structurally.
func Assemble(identifier string) Request {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the company %q using the following 11-parameter investment framework.\n\n", identifier)

	b.WriteString("First, use Google Search to find:\n")
	b.WriteString("1. Latest financial data (Market Cap, Revenue, Margins, ROCE, Debt, Cash Flow vs PAT).\n")
	b.WriteString("2. Recent news (last 60-90 days).\n")
	b.WriteString("3. Business model details.\n\n")

	b.WriteString("Then, score the company (1-10) on these parameters:\n")
	for i, dim := range analysis.Dimensions {
		if hint, ok := analysis.DimensionHints[dim]; ok {
			fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, dim, hint)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, dim)
		}
	}
	b.WriteString("Use these exact parameter names in the output.\n\n")

	b.WriteString("Total Score is the sum of all 11 scores.\n\n")
	b.WriteString("Classify based on Total Score:\n")
	b.WriteString("85+ -> High-quality business\n")
	b.WriteString("70-85 -> Strong business\n")
	b.WriteString("55-70 -> Average business\n")
	b.WriteString("<55 -> Risky business\n\n")

	b.WriteString("Risk Signal Check (CRITICAL):\n")
	b.WriteString("Check for: CFO < PAT, Revenue Stagnation, Margin Compression, Rising Debt, Customer Concentration.\n")
	fmt.Fprintf(&b, "Return a list of specific \"Risk Signals\". If no major warnings, return [%q].\n\n", analysis.NoRedFlagsSentinel)

	b.WriteString("Score Trend Interpretation:\n")
	b.WriteString("Interpret the trajectory. Is the business improving, stable, or deteriorating? Explain in under 6 lines.\n\n")

	b.WriteString("Provide a Long-Term Investor Summary covering business strength, risks, what to track, and volatility.\n\n")

	b.WriteString("IMPORTANT: Write for a beginner retail investor. Use simple, clear language. Avoid overly complex jargon. ")
	b.WriteString("Explain the \"why\" behind the scores simply.\n")

	return Request{
		Instruction: b.String(),
		System:      SystemPersona,
	}
}
