// Package llm talks to the Gemini API. The client performs one
// schema-constrained, search-grounded generateContent call per analysis
// and keeps no local state.
package llm

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"equiscan/pkg/core/analysis"
	"equiscan/pkg/core/prompt"
)

const defaultModel = "gemini-3-flash-preview"

// Citation is one web source the model grounded its answer on.
type Citation struct {
	Title string
	URI   string
}

// RawAnalysis is the unvalidated service output: the structured JSON
// text plus the grounding citations, in the order the service reported
// them.
type RawAnalysis struct {
	JSON      string
	Citations []Citation
}

// GeminiClient issues analysis requests against the Gemini API with the
// Google Search tool enabled and output constrained to the analysis
// response schema.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a client from an API key. An empty key yields
// a client whose Invoke reports the analysis as unavailable, so a
// missing secret degrades at call time instead of failing boot.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = defaultModel
	}
	if apiKey == "" {
		return &GeminiClient{model: model}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Invoke sends the assembled request and returns the raw structured
// payload. Every failure mode (transport, auth, quota, empty response,
// unconfigured key) surfaces as ErrAnalysisUnavailable; the underlying
// cause goes to the log, not to the user. No retries here: resubmission
// is the caller's choice.
func (c *GeminiClient) Invoke(ctx context.Context, req prompt.Request) (*RawAnalysis, error) {
	if c.client == nil {
		log.Printf("[LLM] GEMINI_API_KEY not configured, cannot analyze")
		return nil, analysis.ErrAnalysisUnavailable
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
		ResponseSchema:   prompt.ResponseSchema(),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: req.System},
			},
		},
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Instruction), config)
	if err != nil {
		log.Printf("[LLM] gemini generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", analysis.ErrAnalysisUnavailable, err)
	}

	text := result.Text()
	if text == "" {
		log.Printf("[LLM] gemini returned no textual payload")
		return nil, fmt.Errorf("%w: empty response", analysis.ErrAnalysisUnavailable)
	}

	raw := &RawAnalysis{JSON: text}
	if len(result.Candidates) > 0 {
		if gm := result.Candidates[0].GroundingMetadata; gm != nil {
			for _, chunk := range gm.GroundingChunks {
				if chunk.Web != nil && chunk.Web.URI != "" {
					raw.Citations = append(raw.Citations, Citation{
						Title: chunk.Web.Title,
						URI:   chunk.Web.URI,
					})
				}
			}
		}
	}
	return raw, nil
}
