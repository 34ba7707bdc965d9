package hrapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
)

const (
	requestTimeout = 10 * time.Second
	maxAttempts    = 3
	backoffStep    = 2 * time.Second
)

// Employee is the upstream HR payload for one staff member.
type Employee struct {
	ExternalID string `json:"id"`
	FullName   string `json:"full_name"`
	Position   string `json:"position"`
	IsActive   bool   `json:"is_active"`
}

type listResponse struct {
	Data []Employee `json:"data"`
}

// Client calls the external HR API. Every call retries up to 3 times with
// linear backoff before failing; callers are expected to degrade gracefully.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Log     zerolog.Logger
}

func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: requestTimeout},
		Log:     log.With().Str("integration", "hr").Logger(),
	}
}

func (c *Client) Enabled() bool { return c.BaseURL != "" }

// ListEmployees fetches the full employee roster.
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	body, err := c.getWithRetry(ctx, c.BaseURL+"/api/employees")
	if err != nil {
		return nil, err
	}
	var resp listResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode employee list: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) getWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			// linear backoff: 2s, 4s
			wait := time.Duration(attempt-1) * backoffStep
			c.Log.Warn().Int("attempt", attempt).Dur("backoff", wait).
				Err(lastErr).Msg("retrying HR API call")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		body, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("HR API call failed after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HR API returned %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
