package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dgnsrekt/match-relay/internal/api/generated"
	"github.com/dgnsrekt/match-relay/internal/data"
)

type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	retryCount int
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewClient creates a relay client. A zero timeout lets reads block for as
// long as the server holds them.
func NewClient(baseURL string, ratePerSec int, timeout, retryDelay time.Duration, retryCount int, logger *zap.Logger) *HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:       100,
		MaxConnsPerHost:    10,
		IdleConnTimeout:    90 * time.Second,
		DisableCompression: false,
	}

	return &HTTPClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec*2),
		retryCount: retryCount,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

func (c *HTTPClient) PublishMatches(ctx context.Context, matches []data.Match) (string, error) {
	if matches == nil {
		matches = []data.Match{}
	}
	body, err := json.Marshal(data.MatchesPayload{Matches: matches})
	if err != nil {
		return "", fmt.Errorf("encoding matches: %w", err)
	}
	return c.publish(ctx, "/matches", body)
}

func (c *HTTPClient) GetMatches(ctx context.Context) ([]data.Match, error) {
	body, err := c.do(ctx, http.MethodGet, "/matches", nil)
	if err != nil {
		return nil, err
	}

	var payload data.MatchesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return payload.Matches, nil
}

func (c *HTTPClient) PublishStreamLinks(ctx context.Context, watchID string, payload data.StreamLinks) (string, error) {
	if !json.Valid(payload) {
		return "", fmt.Errorf("%w: stream links payload is not valid JSON", ErrRejected)
	}
	return c.publish(ctx, "/stream_links/"+url.PathEscape(watchID), payload)
}

func (c *HTTPClient) GetStreamLinks(ctx context.Context, watchID string) (data.StreamLinks, error) {
	body, err := c.do(ctx, http.MethodGet, "/stream_links/"+url.PathEscape(watchID), nil)
	if err != nil {
		return nil, err
	}
	return data.StreamLinks(body), nil
}

func (c *HTTPClient) publish(ctx context.Context, path string, body []byte) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return "", err
	}

	var status generated.Status
	if err := json.Unmarshal(resp, &status); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return status.Message, nil
}

// do sends one request with rate limiting and retries on transport errors,
// 429 and 5xx responses. 404 and 504 are returned as sentinel errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := c.baseURL + path
	c.logger.Debug("requesting", zap.String("method", method), zap.String("url", reqURL))

	var lastErr error
	for attempt := 0; attempt <= c.retryCount; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<(attempt-1)) // Exponential backoff
			c.logger.Debug("retrying request", zap.Int("attempt", attempt), zap.Duration("delay", delay))

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		// Read body before closing for error messages
		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if readErr != nil {
			lastErr = readErr
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusNotFound:
			return nil, ErrNotFound
		case resp.StatusCode == http.StatusGatewayTimeout:
			return nil, ErrTimeout
		case resp.StatusCode == http.StatusBadRequest:
			return nil, fmt.Errorf("%w: %s", ErrRejected, errorMessage(body))
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = ErrRateLimited
			continue
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			continue
		default:
			return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// errorMessage extracts the human-readable part of either error shape.
func errorMessage(body []byte) string {
	var status generated.Status
	if err := json.Unmarshal(body, &status); err == nil && status.Message != "" {
		return status.Message
	}
	var detail generated.Detail
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}
	return string(body)
}
