package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func stubClient(serverURL string) *OpenAI {
	return &OpenAI{
		apiKey:    "test-key",
		model:     "gpt-4o-mini",
		baseURL:   serverURL,
		modelsURL: serverURL,
		client:    http.DefaultClient,
	}
}

func TestOpenAI_Summarize(t *testing.T) {
	var gotReq openaiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing or wrong Authorization header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request body: %v", err)
		}

		resp := openaiResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: "• Fixed X\n• Added Y"}},
			},
			Usage: openaiUsage{TotalTokens: 42},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := stubClient(server.URL)
	resp, err := o.Summarize(context.Background(), SummaryRequest{
		SystemPrompt: "system",
		UserPrompt:   "user",
		MaxTokens:    200,
		Temperature:  0.2,
	})
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if resp.Content != "• Fixed X\n• Added Y" {
		t.Errorf("Content = %q, want %q", resp.Content, "• Fixed X\n• Added Y")
	}
	if resp.TokensUsed != 42 {
		t.Errorf("TokensUsed = %d, want 42", resp.TokensUsed)
	}

	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q, want gpt-4o-mini", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("request messages = %+v, want system then user", gotReq.Messages)
	}
	if gotReq.MaxTokens != 200 {
		t.Errorf("request max_tokens = %d, want 200", gotReq.MaxTokens)
	}
	if gotReq.Temperature != 0.2 {
		t.Errorf("request temperature = %v, want 0.2", gotReq.Temperature)
	}
}

func TestOpenAI_Summarize_DefaultMaxTokens(t *testing.T) {
	var gotReq openaiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		resp := openaiResponse{
			Choices: []openaiChoice{{Message: openaiMessage{Content: "ok"}}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := stubClient(server.URL)
	if _, err := o.Summarize(context.Background(), SummaryRequest{UserPrompt: "user"}); err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if gotReq.MaxTokens != 300 {
		t.Errorf("request max_tokens = %d, want default 300", gotReq.MaxTokens)
	}
}

func TestOpenAI_Summarize_SingleAttempt(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(500)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer server.Close()

	o := stubClient(server.URL)
	_, err := o.Summarize(context.Background(), SummaryRequest{UserPrompt: "user"})
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retry)", attempts)
	}
}

func TestOpenAI_Summarize_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer server.Close()

	o := stubClient(server.URL)
	_, err := o.Summarize(context.Background(), SummaryRequest{UserPrompt: "user"})
	if err == nil {
		t.Fatal("expected error on 401 response")
	}
	if !IsAuthError(err) {
		t.Errorf("IsAuthError = false for 401 response, err = %v", err)
	}
}

func TestOpenAI_Summarize_MissingContent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"choices":[]}`},
		{"empty content", `{"choices":[{"message":{"content":""}}]}`},
		{"malformed json", `{"choices":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			o := stubClient(server.URL)
			if _, err := o.Summarize(context.Background(), SummaryRequest{UserPrompt: "user"}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestIsAuthError_Wrapped(t *testing.T) {
	err := fmt.Errorf("provider summarize: %w", &authError{message: "nope"})
	if !IsAuthError(err) {
		t.Error("IsAuthError = false for a wrapped auth error")
	}
	if IsAuthError(fmt.Errorf("plain failure")) {
		t.Error("IsAuthError = true for a plain error")
	}
}

func TestNewOpenAI_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewOpenAI("gpt-4o-mini"); err == nil {
		t.Error("expected error when OPENAI_API_KEY is unset")
	}
}

func TestOpenAI_ValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
		auth    bool
	}{
		{"valid key", 200, false, false},
		{"rejected key", 401, true, true},
		{"server error", 500, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != "GET" {
					t.Errorf("method = %s, want GET", r.Method)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"data":[]}`))
			}))
			defer server.Close()

			o := stubClient(server.URL)
			err := o.ValidateKey(context.Background())
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateKey error: %v", err)
			}
			if tt.auth && !IsAuthError(err) {
				t.Errorf("IsAuthError = false, err = %v", err)
			}
		})
	}
}
