package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/standup/internal/config"
	"github.com/dshills/standup/internal/daterange"
	"github.com/dshills/standup/internal/providers"
	"github.com/dshills/standup/internal/redact"
)

// Input describes one summarization run.
type Input struct {
	Author  string
	Window  daterange.Window
	Commits []string
	Hint    string
}

// Report is the result of a summarization run.
type Report struct {
	Author     string   `json:"author"`
	Since      string   `json:"since"`
	Until      string   `json:"until"`
	Model      string   `json:"model"`
	Commits    []string `json:"commits"`
	Summary    string   `json:"summary"`
	TokensUsed int      `json:"tokensUsed,omitempty"`
}

// Run sends the commits to the summarizer and assembles a report.
// Commit text is scrubbed for secrets before it leaves the machine.
// The remote call is made exactly once; any failure propagates.
func Run(ctx context.Context, s providers.Summarizer, in Input, cfg config.Config) (*Report, error) {
	commitText := redact.Secrets(strings.Join(in.Commits, "\n"))

	req := providers.SummaryRequest{
		SystemPrompt: SystemPrompt(),
		UserPrompt:   BuildUserPrompt(commitText, in.Hint),
		MaxTokens:    cfg.MaxTokens,
		Temperature:  cfg.Temperature,
	}

	resp, err := s.Summarize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("provider summarize: %w", err)
	}

	return &Report{
		Author:     in.Author,
		Since:      daterange.FormatTime(in.Window.Since),
		Until:      daterange.FormatTime(in.Window.Until),
		Model:      cfg.Model,
		Commits:    in.Commits,
		Summary:    resp.Content,
		TokensUsed: resp.TokensUsed,
	}, nil
}
