package analysis

// The 11 canonical scoring dimensions. The prompt assembler enumerates
// exactly these names, so downstream consumers can key on them directly
// instead of fuzzy-matching free text.
const (
	DimGrowthType       = "Growth Type"
	DimRevenueQuality   = "Revenue Quality"
	DimMarginTrend      = "Margin Trend"
	DimROCE             = "ROCE / Capital Efficiency"
	DimCFOvsPAT         = "CFO vs PAT"
	DimWorkingCapital   = "Working Capital Efficiency"
	DimBalanceSheet     = "Balance Sheet Discipline"
	DimCapexLeverage    = "Capex & Operating Leverage Potential"
	DimExecution        = "Execution Consistency"
	DimMoat             = "Moat / Unique Business Advantage"
	DimValuationComfort = "Valuation Comfort"
)

// NumDimensions is the fixed number of scored parameters in a valid Record.
const NumDimensions = 11

// Dimensions lists the canonical dimension names in scoring order.
var Dimensions = [NumDimensions]string{
	DimGrowthType,
	DimRevenueQuality,
	DimMarginTrend,
	DimROCE,
	DimCFOvsPAT,
	DimWorkingCapital,
	DimBalanceSheet,
	DimCapexLeverage,
	DimExecution,
	DimMoat,
	DimValuationComfort,
}

// DimensionHints explains what each dimension measures; the assembler
// appends them to the enumerated list so the model scores the intended
// concept rather than its own reading of the label.
var DimensionHints = map[string]string{
	DimGrowthType:     "Organic/Acquisition/Cyclical",
	DimRevenueQuality: "Consistency",
	DimMarginTrend:    "Expansion/Compression",
	DimCFOvsPAT:       "Cash flow alignment",
	DimBalanceSheet:   "Debt/Stability",
	DimExecution:      "Management",
}

// IsCanonicalDimension reports whether name is one of the 11 fixed
// dimension identifiers emitted by the prompt assembler.
func IsCanonicalDimension(name string) bool {
	for _, d := range Dimensions {
		if d == name {
			return true
		}
	}
	return false
}
