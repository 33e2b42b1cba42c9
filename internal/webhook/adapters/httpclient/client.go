package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sales-dashboard-service/internal/webhook/core/domain"
	"sales-dashboard-service/internal/webhook/core/ports"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ ports.WebhookSourcePort = (*Client)(nil)

func (c *Client) FetchEvents(ctx context.Context) ([]domain.RawEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d from webhook endpoint", resp.StatusCode)
	}

	var events []domain.RawEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}
	if events == nil {
		return nil, fmt.Errorf("webhook payload is not a list")
	}

	return events, nil
}
