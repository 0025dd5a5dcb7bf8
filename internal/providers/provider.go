package providers

import "context"

// SummaryRequest contains the prompts sent to an LLM for summarization.
type SummaryRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// SummaryResponse contains the raw response from an LLM.
type SummaryResponse struct {
	Content    string
	TokensUsed int
}

// Summarizer is the provider abstraction interface. The CLI depends on it
// rather than on a concrete client so tests can substitute a canned double.
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
	Name() string
}
