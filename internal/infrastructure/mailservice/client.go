// Package mailservice is the gateway's HTTP client for the internal
// notification service.
package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/config"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
)

const callTimeout = 5 * time.Second

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: callTimeout},
		baseURL:    strings.TrimRight(cfg.NotificationServiceURL, "/"),
		apiKey:     cfg.ServiceAPIKey,
	}
}

// SendOrderEmail asks the notification service to send the order
// confirmation. Fire-and-forget from the orchestrator's point of view: the
// result is only ever logged.
func (c *Client) SendOrderEmail(ctx context.Context, req domain.SendEmailRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal send email: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send-email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build send email request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("call notification service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification service returned %d", resp.StatusCode)
	}
	return nil
}
