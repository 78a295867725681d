package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultTimeout       = 60 * time.Second
	defaultMaxRetries    = 2
	defaultBaseBackoff   = time.Second
	defaultRateLimit     = 2 // requests per second
	defaultBurst         = 4
)

// LLMClient generates chat completions. The schedule service depends on this
// interface so tests can substitute a canned model.
type LLMClient interface {
	Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}

// ClientConfig configures the OpenAI-backed LLMClient.
type ClientConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// openAIClient implements LLMClient against the OpenAI chat-completions API.
type openAIClient struct {
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// NewOpenAIClient creates a chat-completions client.
func NewOpenAIClient(cfg ClientConfig) (LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &openAIClient{
		model:   model,
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		maxRetries: defaultMaxRetries,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends one system+user exchange and returns the model reply.
// Transient failures (429s, 5xx, transport errors) are retried with
// exponential backoff up to the configured limit.
func (c *openAIClient) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := defaultBaseBackoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		reply, err := c.doRequest(ctx, req)
		if err == nil {
			return reply, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			return "", err
		}
	}

	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *openAIClient) doRequest(ctx context.Context, req chatRequest) (string, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &retryableError{err: fmt.Errorf("API request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &retryableError{err: fmt.Errorf("rate limited (429)")}
	}
	if resp.StatusCode >= 500 {
		return "", &retryableError{err: fmt.Errorf("server error (%d): %s", resp.StatusCode, string(body))}
	}
	if resp.StatusCode != http.StatusOK {
		var errResp apiError
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// retryableError marks errors worth retrying.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func isRetryableError(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}
