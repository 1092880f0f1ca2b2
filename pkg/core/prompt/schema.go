package prompt

import "google.golang.org/genai"

// ResponseSchema returns the structured-output descriptor for an
// analysis request. The field set is exactly the Record contract minus
// groundingUrls, which is attached afterwards from citation metadata
// rather than generated by the model.
//
// Built fresh per call so callers can never mutate a shared schema.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"companyName": {Type: genai.TypeString},
			"ticker":      {Type: genai.TypeString},
			"sector":      {Type: genai.TypeString},
			"marketCap": {
				Type:        genai.TypeString,
				Description: "Current market cap with currency",
			},
			"businessSummary": {
				Type:        genai.TypeString,
				Description: "5-6 lines summary of the business model",
			},
			"latestNews": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "3-4 bullet points of news from the last 60-90 days",
			},
			"riskSignals": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of specific warning signals (e.g. 'CFO < PAT', 'Margin Compression'). If none, return ['No major red flags detected.']",
			},
			"scoreTrend": {
				Type:        genai.TypeString,
				Description: "Interpretation of business quality trend (Improving/Stable/Declining) based on data.",
			},
			"scores": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"parameter": {Type: genai.TypeString},
						"score": {
							Type:        genai.TypeInteger,
							Description: "Score from 1 to 10",
						},
						"reason": {
							Type:        genai.TypeString,
							Description: "Simple, easy-to-understand explanation for a beginner investor (1-2 sentences)",
						},
					},
					Required: []string{"parameter", "score", "reason"},
				},
			},
			"totalScore": {Type: genai.TypeInteger},
			"classification": {
				Type:        genai.TypeString,
				Description: "High-quality, Strong, Average, or Risky based on score",
			},
			"investmentSummary": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"businessStrength":  {Type: genai.TypeString},
					"keyRisks":          {Type: genai.TypeString},
					"quarterlyTracking": {Type: genai.TypeString},
					"volatilityNote":    {Type: genai.TypeString},
				},
				Required: []string{"businessStrength", "keyRisks", "quarterlyTracking", "volatilityNote"},
			},
		},
		Required: []string{
			"companyName", "ticker", "sector", "marketCap", "businessSummary",
			"latestNews", "riskSignals", "scoreTrend", "scores", "totalScore",
			"classification", "investmentSummary",
		},
	}
}
