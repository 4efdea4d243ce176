// Package webhook forwards assistant requests to a user-configured
// webhook and provides canned content when none is configured.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotConfigured    = errors.New("no webhook URL is configured")
	ErrUnexpectedStatus = errors.New("the webhook responded with an unexpected status")
	ErrMalformedBody    = errors.New("the webhook response is not valid JSON")
)

// timestampFormat is ISO 8601 in UTC with milliseconds
const timestampFormat = "2006-01-02T15:04:05.000Z"

// Requests counts webhook calls by kind and outcome.
var Requests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "webhook_requests_total",
		Help: "How many webhook requests were made, partitioned by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// Client sends requests to the webhook.
//
// The URL can be changed at runtime with SetURL. Every request is
// attempted exactly once.
type Client struct {
	mu   sync.RWMutex
	url  string
	http *retryablehttp.Client
}

// New creates a client for url. An empty url means no webhook is configured.
func New(url string, timeout time.Duration) *Client {
	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{Timeout: timeout}
	client.RetryMax = 0
	client.CheckRetry = noRetry
	client.Logger = zerologAdapter{}

	return &Client{
		url:  strings.TrimSpace(url),
		http: client,
	}
}

// noRetry never retries and passes through the response of the only attempt
func noRetry(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, err
}

// URL returns the configured URL, empty if there is none.
func (c *Client) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.url
}

// SetURL changes the URL for all following requests.
func (c *Client) SetURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.url = strings.TrimSpace(url)
}

// post sends payload as JSON and decodes a 2xx response body into out.
//
// The returned status is 0 when no response was received.
func (c *Client) post(ctx context.Context, kind string, payload, out any) (status int, err error) {
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		Requests.WithLabelValues(kind, outcome).Inc()
	}()

	url := c.URL()
	if url == "" {
		return 0, ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, errors.Wrap(err, "failed to marshal request")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "webhook request failed")
	}
	defer resp.Body.Close()

	log.Debug().Str("kind", kind).Int("status", resp.StatusCode).Msg("Webhook")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, errors.Wrapf(ErrUnexpectedStatus, "status %d", resp.StatusCode)
	}

	if out == nil {
		return resp.StatusCode, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errors.Wrap(err, "failed to read response")
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return resp.StatusCode, errors.Wrap(ErrMalformedBody, err.Error())
	}

	return resp.StatusCode, nil
}

// zerologAdapter passes retryablehttp log messages to the global logger
type zerologAdapter struct{}

func (zerologAdapter) Error(msg string, keysAndValues ...any) {
	log.Error().Fields(keysAndValues).Msg(msg)
}

func (zerologAdapter) Warn(msg string, keysAndValues ...any) {
	log.Warn().Fields(keysAndValues).Msg(msg)
}

func (zerologAdapter) Info(msg string, keysAndValues ...any) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (zerologAdapter) Debug(msg string, keysAndValues ...any) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}
