package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"
	defaultModelsURL = "https://api.openai.com/v1/models"
)

// requestTimeout bounds the single remote attempt. The API call is made
// exactly once; a hung connection fails hard instead of blocking forever.
const requestTimeout = 30 * time.Second

// OpenAI implements the Summarizer interface for OpenAI's API.
type OpenAI struct {
	apiKey    string
	model     string
	baseURL   string
	modelsURL string
	client    *http.Client
}

// NewOpenAI creates a new OpenAI client. The API key is read from
// OPENAI_API_KEY; a missing key is a configuration error the caller
// surfaces with remediation guidance.
func NewOpenAI(model string) (*OpenAI, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}
	baseURL := os.Getenv("STANDUP_OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}
	modelsURL := os.Getenv("STANDUP_OPENAI_MODELS_URL")
	if modelsURL == "" {
		modelsURL = defaultModelsURL
	}
	return &OpenAI{
		apiKey:    key,
		model:     model,
		baseURL:   baseURL,
		modelsURL: modelsURL,
		client:    &http.Client{Timeout: requestTimeout},
	}, nil
}

func (o *OpenAI) Name() string { return "openai" }

// Summarize sends one chat-completion request and returns the first
// choice's message text. There is no retry: transport and API errors
// propagate to the caller after a single attempt.
func (o *OpenAI) Summarize(ctx context.Context, req SummaryRequest) (SummaryResponse, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 300
	}

	messages := []openaiMessage{
		{Role: "system", Content: req.SystemPrompt},
		{Role: "user", Content: req.UserPrompt},
	}

	body := openaiRequest{
		Model:       o.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.baseURL, bytes.NewReader(payload))
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode == 401 || httpResp.StatusCode == 403 {
		return SummaryResponse{}, &authError{message: string(respBody)}
	}
	if httpResp.StatusCode != 200 {
		return SummaryResponse{}, fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result openaiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return SummaryResponse{}, fmt.Errorf("parsing response: %w", err)
	}

	if len(result.Choices) == 0 {
		return SummaryResponse{}, fmt.Errorf("no choices in response")
	}
	content := strings.TrimRight(result.Choices[0].Message.Content, "\n")
	if content == "" {
		return SummaryResponse{}, fmt.Errorf("empty text content in API response")
	}

	return SummaryResponse{
		Content:    content,
		TokensUsed: result.Usage.TotalTokens,
	}, nil
}

// ValidateKey checks the API key with a lightweight GET against the
// model-listing endpoint. HTTP 200 means the key is usable.
func (o *OpenAI) ValidateKey(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", o.modelsURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode == 401 || httpResp.StatusCode == 403 {
		body, _ := io.ReadAll(httpResp.Body)
		return &authError{message: string(body)}
	}
	if httpResp.StatusCode != 200 {
		body, _ := io.ReadAll(httpResp.Body)
		return fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(body))
	}
	return nil
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []openaiChoice `json:"choices"`
	Usage   openaiUsage    `json:"usage"`
}

type openaiChoice struct {
	Message openaiMessage `json:"message"`
}

type openaiUsage struct {
	TotalTokens int `json:"total_tokens"`
}
