package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"vtask/internal/config"
	"vtask/internal/intent"
	"vtask/internal/task"
)

const (
	// APITimeout is the timeout for one translation round trip.
	APITimeout = 15 * time.Second

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// OpenAI implements Translator against an OpenAI-compatible chat
// completions API, the same contract the original backend used.
type OpenAI struct {
	client  *http.Client
	baseURL string
	model   string
	now     func() time.Time
}

// NewOpenAI creates a translator client. Requires an API key in the
// environment or the config directory.
func NewOpenAI(ctx context.Context, cfg *config.Config) (*OpenAI, error) {
	key := cfg.APIKey()
	if key == "" {
		return nil, fmt.Errorf("api key not found (set %s or create %s)", config.APIKeyEnv, cfg.APIKeyPath())
	}

	// Static bearer token; the oauth2 transport handles header injection.
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: key})
	httpClient := oauth2.NewClient(ctx, src)

	return &OpenAI{
		client:  httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		now:     time.Now,
	}, nil
}

// NewOpenAIWithHTTPClient creates a client with a custom HTTP client and
// base URL (for testing).
func NewOpenAIWithHTTPClient(httpClient *http.Client, baseURL, model string) *OpenAI {
	return &OpenAI{
		client:  httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		now:     time.Now,
	}
}

// Wire types for the chat completions API. Only the fields we use.

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	Temperature    float64        `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Parse implements Translator.
func (o *OpenAI) Parse(ctx context.Context, text string, visible []task.Task) (intent.Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	reqBody := chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(o.now(), visible)},
			{Role: "user", Content: text},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
		Temperature:    0,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return intent.Intent{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return intent.Intent{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return intent.Intent{}, wrapError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return intent.Intent{}, wrapError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return intent.Intent{}, statusError(resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return intent.Intent{}, fmt.Errorf("invalid completion response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return intent.Intent{}, fmt.Errorf("empty completion response")
	}

	var in intent.Intent
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &in); err != nil {
		return intent.Intent{}, fmt.Errorf("model returned non-JSON intent: %w", err)
	}

	return in, nil
}

// wrapError maps transport errors to user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	return err
}

// statusError maps non-200 API statuses to user-friendly messages.
func statusError(code int) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("api key rejected (check %s)", config.APIKeyEnv)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("rate limited, try again shortly")
	case code >= 500:
		return fmt.Errorf("model service unavailable (status %d)", code)
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
