package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ServiceTokenHeader carries the shared secret on service-to-service calls
const ServiceTokenHeader = "X-Service-Token"

// RetryPolicy bounds the retry behavior of a client. Only connection-level
// failures are retried; any HTTP response, including 4xx/5xx, is a final
// outcome. Instead of re-declaring the same backoff at every call site the
// policy is attached once per collaborator.
type RetryPolicy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy is the policy for inter-service calls
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts:     3,
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
}

// StartupRetryPolicy is the more patient policy for startup dependency waits
var StartupRetryPolicy = RetryPolicy{
	MaxAttempts:     10,
	InitialInterval: 1 * time.Second,
	MaxInterval:     10 * time.Second,
}

// Client is a retrying JSON HTTP client for one sibling service
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	policy     RetryPolicy
}

// NewClient creates a client for a sibling service base URL. Every request
// carries the service token and a bounded per-attempt timeout.
func NewClient(baseURL, token string, policy RetryPolicy) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		token:      token,
		policy:     policy,
	}
}

// doJSON performs a request with retries on transport failures. It returns
// the final HTTP status code; out is only populated on a 2xx response.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) (int, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request body: %w", err)
		}
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var status int
	operation := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set(ServiceTokenHeader, c.token)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Timeout, connection refused, DNS failure: retryable
			return err
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		if out != nil && status >= 200 && status < 300 {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return backoff.Permanent(fmt.Errorf("decode response: %w", err))
			}
		} else {
			_, _ = io.Copy(io.Discard, resp.Body)
		}
		// An HTTP response of any status is an authoritative outcome
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.policy.InitialInterval
	policy.MaxInterval = c.policy.MaxInterval

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, c.policy.MaxAttempts-1), ctx))
	if err != nil {
		return 0, err
	}
	return status, nil
}
