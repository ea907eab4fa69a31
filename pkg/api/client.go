// Package api implements the HTTP client for the Luis Amigo assistant service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	errUtils "github.com/aaronfloresserna/assistantUACH/errors"
	"github.com/aaronfloresserna/assistantUACH/pkg/schema"
)

const (
	// DefaultBaseURL is the assistant service address used when none is configured.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultTopK is the default maximum number of cited sources per answer.
	DefaultTopK = 5
	// DefaultTimeoutSeconds bounds a single request to the assistant service.
	DefaultTimeoutSeconds = 60

	basePath        = "/api"
	askEndpoint     = "/ask"
	healthEndpoint  = "/health"
	contentTypeJSON = "application/json"
)

// Client talks to the assistant service REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client from the application configuration.
func NewClient(cfg *schema.Configuration) (*Client, error) {
	baseURL := DefaultBaseURL
	if cfg != nil && cfg.API.BaseURL != "" {
		baseURL = cfg.API.BaseURL
	}
	if baseURL == "" {
		return nil, errUtils.ErrMissingBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// The per-request deadline is owned by the caller's context; the
		// transport itself stays unbounded.
		httpClient: &http.Client{},
	}, nil
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ask sends a question with its optional filters and decodes the answer.
func (c *Client) Ask(ctx context.Context, request AskRequest) (*AskResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode ask request")
	}

	url := c.baseURL + basePath + askEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build ask request")
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "ask request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused; the body is not part of the
		// user-visible error.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errors.Wrapf(errUtils.ErrServiceStatus, "status %d from %s", resp.StatusCode, url)
	}

	var askResponse AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&askResponse); err != nil {
		return nil, errors.Wrap(errUtils.ErrMalformedResponse, err.Error())
	}

	return &askResponse, nil
}

// Health probes the assistant service health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	url := c.baseURL + basePath + healthEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build health request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "health request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errors.Wrapf(errUtils.ErrServiceStatus, "status %d from %s", resp.StatusCode, url)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, errors.Wrap(errUtils.ErrMalformedResponse, err.Error())
	}

	return &health, nil
}

// Timeout returns the request timeout from the configuration, falling back to
// the default when unset or invalid.
func Timeout(cfg *schema.Configuration) time.Duration {
	seconds := DefaultTimeoutSeconds
	if cfg != nil && cfg.API.TimeoutSeconds > 0 {
		seconds = cfg.API.TimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// TopK returns the configured result-count hint, falling back to the default.
func TopK(cfg *schema.Configuration) int {
	if cfg != nil && cfg.Chat.TopK > 0 {
		return cfg.Chat.TopK
	}
	return DefaultTopK
}

// String implements fmt.Stringer for diagnostics without leaking the question text.
func (r AskRequest) String() string {
	return fmt.Sprintf("AskRequest{materia:%q, semesterLevel:%d, topK:%d, question:%d chars}",
		r.Materia, r.SemesterLevel, r.TopK, len(r.Question))
}
