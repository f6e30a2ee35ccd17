package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kinesia-app/kinesia/config"
)

// Remote is the interface the cache core consumes: a fallible, rate-limited
// key-to-record fetch collaborator.
type Remote interface {
	// Invoke calls a named edge operation with an optional JSON payload and
	// returns the JSON success body.
	Invoke(ctx context.Context, operation string, payload any) (json.RawMessage, error)
	// CheckConfig probes whether the owner's Notion workspace is configured.
	// "Not configured" is reported as (false, nil), not as an error.
	CheckConfig(ctx context.Context, ownerID string) (bool, error)
}

// Client calls the Notion-backed edge API over HTTP. Transient failures
// (429 and 5xx) are retried with a doubling delay up to a fixed budget;
// callers only see the final success or final failure. Every call carries
// an explicit deadline so a hung remote cannot hang the caller.
type Client struct {
	baseURL    string
	token      string
	version    string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    config.NotionBaseURL,
		token:      config.NotionToken,
		version:    config.NotionVersion,
		timeout:    config.NotionTimeout,
		maxRetries: config.NotionMaxRetries,
		retryDelay: config.NotionRetryDelay,
		httpClient: &http.Client{},
	}
}

func (c *Client) Invoke(ctx context.Context, operation string, payload any) (json.RawMessage, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload for %s: %w", operation, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	delay := c.retryDelay
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			logrus.Debugf("[Notion] retrying %s (attempt %d/%d) after %v", operation, attempt, c.maxRetries, delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		result, retryable, err := c.doOnce(ctx, operation, body)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, lastErr
}

// doOnce performs a single HTTP round trip. retryable marks transient
// failures eligible for the backoff loop.
func (c *Client) doOnce(ctx context.Context, operation string, body []byte) (json.RawMessage, bool, error) {
	url := c.baseURL + "/" + operation
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", c.version)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return json.RawMessage(data), false, nil
	}

	apiErr := &APIError{Status: resp.StatusCode}
	if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("edge operation %s failed with status %d", operation, resp.StatusCode)
	}

	retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
	return nil, retryable, apiErr
}

func (c *Client) CheckConfig(ctx context.Context, ownerID string) (bool, error) {
	_, err := c.Invoke(ctx, OpCheckConfig, map[string]string{"owner_id": ownerID})
	if err != nil {
		if IsConfigMissing(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
