// Package client fetches a user's transaction history from the
// transactions API.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zoomie/transations/internal/logger"
	"github.com/zoomie/transations/internal/models"
)

// TransactionsPath is the only endpoint the client talks to.
const TransactionsPath = "/api/transactions"

const maxBodyBytes = 10 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        *zap.Logger
}

type Option func(*Client)

// WithTimeout bounds each fetch, body included. The default is no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchTransactions performs a single GET of the transactions endpoint and
// decodes the body. No retries are attempted. Every returned error matches
// ErrFetch.
func (c *Client) FetchTransactions(ctx context.Context) (*models.APIResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	url := c.baseURL + TransactionsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        url,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}

	result, err := Decode(body)
	if err != nil {
		return nil, err
	}

	c.logger().Debug("transactions fetched", zap.Bool("user_has_data", result.UserHasData))
	return result, nil
}

func (c *Client) logger() *zap.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.Log
}
