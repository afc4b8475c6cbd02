// Package orderservice is the gateway's HTTP client for the internal order
// service. Calls authenticate with the shared service key, never a user token.
package orderservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/config"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
)

// callTimeout is deliberately short: order creation is a best-effort saga
// step and must not hold the payment response hostage.
const callTimeout = 5 * time.Second

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: callTimeout},
		baseURL:    strings.TrimRight(cfg.OrderServiceURL, "/"),
		apiKey:     cfg.ServiceAPIKey,
	}
}

type createEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Data    *domain.Order `json:"data,omitempty"`
}

// CreateOrder posts the recorded transaction to the order service and returns
// the persisted order including its server-assigned id and timestamps.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal create order: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build create order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call order service: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var env createEnvelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("decode order service response (%d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusCreated || !env.Success || env.Data == nil {
		return nil, fmt.Errorf("order service returned %d: %s", resp.StatusCode, env.Message)
	}
	return env.Data, nil
}
