// Package backend implements the client for the remote reaction analysis
// service, the fallback used when the local knowledge base has no answer.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client defines the interface to the remote analysis service.
type Client interface {
	Analyze(ctx context.Context, chem1, chem2 string) (Payload, error)
}

// Payload is the raw analysis payload returned by the service. Result is
// either a JSON object already matching the outcome shape, or a JSON string
// carrying embedded JSON or markdown text; the interpreter resolves which.
type Payload struct {
	Result json.RawMessage
}

// Error is returned for any backend failure: transport errors, non-2xx
// statuses, unparseable top-level responses, and application-level errors
// reported in the response body.
type Error struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("backend: %s: %v", e.Message, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
	default:
		return "backend: " + e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config holds configuration for the HTTP client.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// httpClient implements Client over HTTP.
type httpClient struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewHTTPClient creates a client for the configured analysis endpoint.
func NewHTTPClient(cfg Config) (Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("analysis endpoint is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &httpClient{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// analysisResponse is the top-level response shape. A non-empty Error field
// in an otherwise successful response is treated the same as an HTTP error.
type analysisResponse struct {
	Error  string          `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Analyze sends the two raw, original input strings to the analysis endpoint.
// The raw forms go over the wire, not resolved identities, since the remote
// service may understand chemicals absent from the local table. Single
// attempt, no retries, no caching.
func (c *httpClient) Analyze(ctx context.Context, chem1, chem2 string) (Payload, error) {
	requestBody := map[string]string{
		"chem1": chem1,
		"chem2": chem2,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return Payload{}, &Error{Message: "failed to marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(string(jsonBody)))
	if err != nil {
		return Payload{}, &Error{Message: "failed to create request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Payload{}, &Error{Message: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, &Error{Message: "failed to read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Payload{}, &Error{Message: "analysis service error", StatusCode: resp.StatusCode}
	}

	var response analysisResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return Payload{}, &Error{Message: "failed to parse response", Err: err}
	}

	if response.Error != "" {
		return Payload{}, &Error{Message: response.Error}
	}

	return Payload{Result: response.Result}, nil
}
