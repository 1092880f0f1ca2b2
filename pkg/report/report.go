// Package report renders a finished analysis record as Markdown or
// HTML for export and the format=html API response.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"equiscan/pkg/core/analysis"
)

// md is the shared converter. The table extension is needed for the
// scores grid.
var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown renders the record as a readable Markdown report.
func Markdown(rec *analysis.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n\n", rec.CompanyName, rec.Ticker)
	fmt.Fprintf(&b, "**Sector:** %s | **Market Cap:** %s\n\n", rec.Sector, rec.MarketCap)
	fmt.Fprintf(&b, "**Total Score:** %d / %d (%s business)\n\n", rec.TotalScore, analysis.MaxTotalScore, rec.Classification)

	b.WriteString("## Business Summary\n\n")
	b.WriteString(rec.BusinessSummary)
	b.WriteString("\n\n")

	b.WriteString("## Scores\n\n")
	b.WriteString("| Parameter | Score | Reason |\n|---|---|---|\n")
	for _, s := range rec.Scores {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", s.Parameter, s.Score, s.Reason)
	}
	b.WriteString("\n")

	b.WriteString("## Score Trend\n\n")
	b.WriteString(rec.ScoreTrend)
	b.WriteString("\n\n")

	b.WriteString("## Risk Signals\n\n")
	for _, s := range rec.RiskSignals {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("\n")

	if len(rec.LatestNews) > 0 {
		b.WriteString("## Latest News\n\n")
		for _, n := range rec.LatestNews {
			fmt.Fprintf(&b, "- %s\n", n)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Long-Term Investor Summary\n\n")
	fmt.Fprintf(&b, "**Business strength:** %s\n\n", rec.Summary.BusinessStrength)
	fmt.Fprintf(&b, "**Key risks:** %s\n\n", rec.Summary.KeyRisks)
	fmt.Fprintf(&b, "**What to track quarterly:** %s\n\n", rec.Summary.QuarterlyTracking)
	fmt.Fprintf(&b, "**Volatility note:** %s\n\n", rec.Summary.VolatilityNote)

	if len(rec.GroundingURLs) > 0 {
		b.WriteString("## Sources\n\n")
		for _, u := range rec.GroundingURLs {
			fmt.Fprintf(&b, "- <%s>\n", u)
		}
	}

	return b.String()
}

// HTML renders the record's Markdown report to HTML.
func HTML(rec *analysis.Record) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(rec)), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
