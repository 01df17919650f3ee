// Package baraka provides a client for the Baraka finance market API
package baraka

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/mattcarrick/folio/internal/common"
	"github.com/mattcarrick/folio/internal/interfaces"
	"github.com/mattcarrick/folio/internal/models"
)

const (
	DefaultBaseURL   = "https://api.dev.app.getbaraka.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the QuoteClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Baraka client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Baraka API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", c.baseURL+path).Msg("Baraka API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetHistoricalPrices retrieves the recent daily closing price series
// for a symbol. Points with unparseable dates or non-positive closes
// are dropped.
func (c *Client) GetHistoricalPrices(ctx context.Context, symbol string) ([]models.PricePoint, error) {
	symbol = models.NormalizeSymbol(symbol)

	params := url.Values{}
	params.Set("range", "month")
	params.Set("interval", "day")

	path := fmt.Sprintf("/v1/finance_market/quotes/%s/historical", symbol)

	var resp historicalResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	series := make([]models.PricePoint, 0, len(resp.Data))
	for _, point := range resp.Data {
		date, ok := models.ParseTradeDate(point.Date)
		if !ok || point.Close <= 0 {
			continue
		}
		series = append(series, models.PricePoint{
			Date:  date,
			Close: point.Close,
		})
	}

	return series, nil
}

// historicalResponse represents the API response for historical quotes
type historicalResponse struct {
	Data []quoteResponse `json:"data"`
}

type quoteResponse struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// Ensure Client implements QuoteClient
var _ interfaces.QuoteClient = (*Client)(nil)
