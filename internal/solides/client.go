// Package solides implements the Sólides HR platform API client.
package solides

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/arqpeople/fopag-flow/internal/common"
	"github.com/arqpeople/fopag-flow/internal/service"
)

// DefaultBaseURL is the production Sólides API endpoint.
const DefaultBaseURL = "https://app.solides.com/pt-BR/api/v1"

const defaultPageSize = 100

// Client talks to the Sólides collaborator API. It implements
// service.HRClient.
type Client struct {
	baseURL    string
	token      string
	pageSize   int
	httpClient *http.Client
	retryOpts  service.RetryOptions
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithRetryOptions overrides the retry policy applied to each request.
func WithRetryOptions(opts service.RetryOptions) Option {
	return func(c *Client) { c.retryOpts = opts }
}

// NewClient creates a Sólides API client authenticated with the given token.
func NewClient(token string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: solides api token", common.ErrMissingConfig)
	}

	c := &Client{
		baseURL:  DefaultBaseURL,
		token:    token,
		pageSize: defaultPageSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryOpts: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchEmployees retrieves every collaborator, active or not. It first walks
// the paginated listing, then fetches each collaborator's detail record;
// when a detail fetch fails the listing record stands in, so one flaky
// detail endpoint cannot drop an employee from the sync.
func (c *Client) FetchEmployees(ctx context.Context) ([]map[string]any, error) {
	listing, err := c.listCollaborators(ctx)
	if err != nil {
		return nil, err
	}
	if len(listing) == 0 {
		return nil, nil
	}

	c.logger.Info("collaborator listing complete, fetching details", "count", len(listing))

	detailed := make([]map[string]any, 0, len(listing))
	for _, summary := range listing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, ok := collaboratorID(summary)
		if !ok {
			continue
		}

		detail, err := c.fetchCollaborator(ctx, id)
		if err != nil {
			c.logger.Warn("collaborator detail fetch failed, using listing record",
				"id", id,
				"error", err)
			detailed = append(detailed, summary)
			continue
		}
		detailed = append(detailed, detail)
	}
	return detailed, nil
}

// listCollaborators pages through the collaborator listing until the API
// returns an empty page.
func (c *Client) listCollaborators(ctx context.Context) ([]map[string]any, error) {
	var all []map[string]any

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/colaboradores?page=%d&page_size=%d&status=todos",
			c.baseURL, page, c.pageSize)

		var batch []map[string]any
		if err := c.getJSON(ctx, url, &batch); err != nil {
			return nil, fmt.Errorf("listing collaborators page %d: %w", page, err)
		}
		if len(batch) == 0 {
			return all, nil
		}

		all = append(all, batch...)
		c.logger.Debug("collaborator page loaded", "page", page, "records", len(batch))
	}
}

func (c *Client) fetchCollaborator(ctx context.Context, id int64) (map[string]any, error) {
	url := fmt.Sprintf("%s/colaboradores/%d", c.baseURL, id)

	var detail map[string]any
	if err := c.getJSON(ctx, url, &detail); err != nil {
		return nil, err
	}
	return detail, nil
}

// getJSON performs an authenticated GET with retries and decodes the
// response body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	return common.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: false}
		}
		req.Header.Set("Authorization", fmt.Sprintf("Token token=%s", c.token))
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrAPIConnection, err)
		}
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				c.logger.Warn("failed to close response body", "error", closeErr)
			}
		}()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return common.ErrAPIRateLimit
		case resp.StatusCode >= 500:
			return &common.RetryableError{
				Err:       fmt.Errorf("solides api returned %d", resp.StatusCode),
				Retryable: true,
			}
		case resp.StatusCode != http.StatusOK:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return &common.RetryableError{
				Err:       fmt.Errorf("solides api returned %d: %s", resp.StatusCode, body),
				Retryable: false,
			}
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &common.RetryableError{
				Err:       fmt.Errorf("decoding response: %w", err),
				Retryable: false,
			}
		}
		return nil
	}, c.retryOpts)
}

// collaboratorID pulls the numeric id from a listing record. The API encodes
// it as a JSON number, but string ids are tolerated too.
func collaboratorID(record map[string]any) (int64, bool) {
	switch v := record["id"].(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}
