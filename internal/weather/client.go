package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeekhub/jeek/internal/logging"
	"github.com/jeekhub/jeek/internal/urls"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for failed requests
	DefaultMaxRetries = 1

	// DefaultRetryDelay is the delay before a retry
	DefaultRetryDelay = 500 * time.Millisecond
)

// Client fetches current conditions from a wttr.in compatible service.
type Client struct {
	// Endpoint is the service base URL (default https://wttr.in)
	Endpoint string

	// Location is a city name or coordinates; empty lets the service
	// geolocate the caller.
	Location string

	// Lang selects the condition language (wttr.in "lang" parameter).
	Lang string

	HTTPClient *http.Client

	MaxRetries int
	RetryDelay time.Duration
}

// NewClient creates a weather client. An empty endpoint selects the
// default service.
func NewClient(endpoint, location string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = urls.WeatherService
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		Location:   location,
		Lang:       "zh",
		HTTPClient: &http.Client{Timeout: timeout},
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// requestURL builds <endpoint>/<location>?format=j1&lang=<lang>.
func (c *Client) requestURL() string {
	q := url.Values{}
	q.Set("format", "j1")
	if c.Lang != "" {
		q.Set("lang", c.Lang)
	}
	return fmt.Sprintf("%s/%s?%s", c.Endpoint, url.PathEscape(c.Location), q.Encode())
}

// Fetch retrieves the current report, retrying retryable failures.
// It is safe to call from a background goroutine.
func (c *Client) Fetch(ctx context.Context) (*Report, error) {
	var lastErr error

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, classifyNetworkError("fetch cancelled", ctx.Err())
			case <-time.After(c.RetryDelay):
			}
		}

		report, err := c.fetchAttempt(ctx)
		if err == nil {
			logging.Debug("Weather fetched",
				zap.String("location", report.Location),
				zap.String("condition", report.Condition),
				zap.Int("attempt", attempt+1),
			)
			return report, nil
		}

		lastErr = err
		logging.Warn("Weather fetch failed",
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
		if !IsRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

// fetchAttempt performs a single request.
func (c *Client) fetchAttempt(ctx context.Context) (*Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(), nil)
	if err != nil {
		return nil, classifyNetworkError("failed to create request", err)
	}
	// wttr.in switches to plain text for browser-like agents.
	req.Header.Set("User-Agent", "curl/8 (jeek)")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyNetworkError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, newHTTPError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, classifyNetworkError("failed to read response body", err)
	}

	var doc j1Response
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, newParseError("failed to parse JSON response", err)
	}

	return doc.toReport()
}
