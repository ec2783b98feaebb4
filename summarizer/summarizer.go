package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Summarizer writes a short plain-text summary of an article.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type SummarizeResult struct {
	SummaryShort string `json:"summary_short"`
	IsFailure    bool   `json:"is_failure"`
}

var ErrSummaryFailed = errors.New("summarizer could not summarize the content")

const SYSTEM_INSTRUCTION = `
You are a content summarization assistant for blog posts. Your task is to analyze the provided text and produce a short summary for a blog listing card.
The response MUST be a valid JSON object with two keys:
1.  summary_short: A concise plain-text summary of the post, no more than 300 characters.
2.  is_failure: A boolean value. Set to true if the content contains a security check (e.g., "I'm not a bot," "Are you human?") or is otherwise impossible to summarize. Otherwise, set to false.
You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
If summarization fails, set is_failure to true and provide an empty string for summary_short.
Write the summary in the same language as the input text.
`

// GeminiSummarizer uses the Gemini API through google.golang.org/genai.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

func NewGeminiSummarizer(ctx context.Context, apiKey, model string) (*GeminiSummarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiSummarizer{client: client, model: model}, nil
}

func (g *GeminiSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	result, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return "", err
	}

	summary, err := ParseResult(result.Text())
	if err != nil {
		return "", err
	}
	return summary.SummaryShort, nil
}

// ParseResult decodes the model output. A stray ```json fence is tolerated.
func ParseResult(raw string) (*SummarizeResult, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var summary SummarizeResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	if summary.IsFailure || strings.TrimSpace(summary.SummaryShort) == "" {
		return nil, ErrSummaryFailed
	}
	summary.SummaryShort = strings.TrimSpace(summary.SummaryShort)
	return &summary, nil
}
