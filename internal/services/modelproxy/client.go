// Package modelproxy provides the client for the local model-serving
// endpoint, with bounded retry and jittered exponential backoff.
package modelproxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// AskRequest is the request body for the /ask endpoint.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the payload returned by the local model.
type AskResponse struct {
	Answer   string  `json:"answer"`
	Response string  `json:"response,omitempty"`
	Source   string  `json:"source,omitempty"`
	Latency  float64 `json:"latency,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
}

// Text returns whichever answer field the model populated.
func (r *AskResponse) Text() string {
	if r.Answer != "" {
		return r.Answer
	}
	return r.Response
}

// HealthResponse is the payload returned by the /health endpoint.
type HealthResponse struct {
	Healthy bool `json:"healthy"`
}

// ClientConfig holds the configuration for the model proxy client.
type ClientConfig struct {
	BaseURL     string
	HTTPClient  *http.Client
	MaxRetries  int
	BackoffBase time.Duration
	BackoffCap  time.Duration
}

// Retry defaults: 3 attempts, 1s base doubling per attempt, 10s cap,
// up to 20% jitter.
const (
	DefaultMaxRetries   = 3
	DefaultBackoffBase  = 1000 * time.Millisecond
	DefaultBackoffCap   = 10000 * time.Millisecond
	backoffJitterFactor = 0.2
)

// Client calls the local model endpoint.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	maxRetries  int
	backoffBase time.Duration
	backoffCap  time.Duration
}

// NewClient creates a new model proxy client.
func NewClient(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	backoffBase := cfg.BackoffBase
	if backoffBase <= 0 {
		backoffBase = DefaultBackoffBase
	}
	backoffCap := cfg.BackoffCap
	if backoffCap <= 0 {
		backoffCap = DefaultBackoffCap
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		httpClient:  httpClient,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
		backoffCap:  backoffCap,
	}, nil
}

// Ask sends a question to the local model, retrying transient failures.
func (c *Client) Ask(ctx context.Context, question string) (*AskResponse, error) {
	body, err := json.Marshal(AskRequest{Question: question})
	if err != nil {
		return nil, fmt.Errorf("failed to encode ask request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.backoff(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := c.post(ctx, c.baseURL+"/ask", body)
		if err != nil {
			lastErr = err
			log.Warn().Err(err).Int("attempt", attempt+1).Msg("model ask attempt failed")
			continue
		}
		return resp, nil
	}

	return nil, fmt.Errorf("model unreachable after %d attempts: %w", c.maxRetries, lastErr)
}

// Health checks the model endpoint. A failed check is reported as an
// unhealthy status, not an error.
func (c *Client) Health(ctx context.Context) HealthResponse {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return HealthResponse{Healthy: false}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("model health check failed")
		return HealthResponse{Healthy: false}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return HealthResponse{Healthy: false}
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return HealthResponse{Healthy: false}
	}
	return health
}

// post executes one POST attempt.
func (c *Client) post(ctx context.Context, url string, body []byte) (*AskResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var askResp AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&askResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &askResp, nil
}

// backoff computes the jittered delay before the given attempt.
func (c *Client) backoff(attempt int) time.Duration {
	delay := c.backoffBase
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= c.backoffCap {
			delay = c.backoffCap
			break
		}
	}

	jitter := time.Duration(rand.Float64() * backoffJitterFactor * float64(delay))
	return delay + jitter
}
