package analysis

// ScoreParameter is one scored dimension of the 11-parameter framework.
type ScoreParameter struct {
	Parameter string `json:"parameter"`
	Score     int    `json:"score"` // 1-10
	Reason    string `json:"reason"`
}

// InvestmentSummary is the long-term investor view of the company.
type InvestmentSummary struct {
	BusinessStrength  string `json:"businessStrength"`
	KeyRisks          string `json:"keyRisks"`
	QuarterlyTracking string `json:"quarterlyTracking"`
	VolatilityNote    string `json:"volatilityNote"`
}

// Record is the complete fundamental-analysis result for one company.
// A Record is built exactly once by the normalizer and never mutated
// afterwards; persistence and presentation are read-only consumers.
type Record struct {
	CompanyName     string            `json:"companyName"`
	Ticker          string            `json:"ticker"`
	Sector          string            `json:"sector"`
	MarketCap       string            `json:"marketCap"`
	BusinessSummary string            `json:"businessSummary"`
	LatestNews      []string          `json:"latestNews"`
	RiskSignals     []string          `json:"riskSignals"`
	ScoreTrend      string            `json:"scoreTrend"`
	Scores          []ScoreParameter  `json:"scores"`
	TotalScore      int               `json:"totalScore"`
	Classification  Classification    `json:"classification"`
	Summary         InvestmentSummary `json:"investmentSummary"`
	GroundingURLs   []string          `json:"groundingUrls,omitempty"`
}

// NoRedFlagsSentinel is the single-element risk list the model returns
// when it found nothing material. It must never coexist with real signals.
const NoRedFlagsSentinel = "No major red flags detected."

// HasOnlySentinel reports whether the risk list is exactly the "nothing
// found" placeholder.
func HasOnlySentinel(signals []string) bool {
	return len(signals) == 1 && signals[0] == NoRedFlagsSentinel
}
