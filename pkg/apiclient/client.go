// Package apiclient is the Go client for the platform's public API. It holds
// the caller's token pair and transparently refreshes an expired access token:
// when the server answers 401 with expired=true, the client refreshes once
// and retries the original call exactly once.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
)

// ErrNotAuthenticated is returned when a call needs tokens the client does
// not hold, or when the refresh flow itself fails.
var ErrNotAuthenticated = errors.New("apiclient: not authenticated")

// APIError is a non-2xx response from the platform.
type APIError struct {
	StatusCode int
	Message    string
	Expired    bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the gateway service. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func New(baseURL string) *Client {
	return &Client{
		// The payment endpoint blocks on a gateway call with a 30s deadline.
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// SetTokens installs a previously obtained token pair (restored session).
func (c *Client) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Expired bool            `json:"expired,omitempty"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	_, err := c.post(ctx, "/register", map[string]string{"email": email, "password": password}, false)
	return err
}

// Login authenticates and stores the returned token pair.
func (c *Client) Login(ctx context.Context, email, password string) error {
	data, err := c.post(ctx, "/login", map[string]string{"email": email, "password": password}, false)
	if err != nil {
		return err
	}
	var pair domain.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	c.SetTokens(pair.AccessToken, pair.RefreshToken)
	return nil
}

// Logout tells the server (a stateless no-op) and drops the local tokens.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	refresh := c.refreshToken
	c.mu.Unlock()
	_, err := c.post(ctx, "/logout", map[string]string{"refreshToken": refresh}, false)
	c.SetTokens("", "")
	return err
}

// Pay runs a payment for the given cart.
func (c *Client) Pay(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	data, err := c.post(ctx, "/api/payment", req, true)
	if err != nil {
		return nil, err
	}
	var resp domain.PaymentResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, authed bool) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body, authed)
}

// do issues one request. For authenticated calls it applies the
// refresh-once-and-retry policy on an expired access token.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, authed bool) (json.RawMessage, error) {
	data, err := c.send(ctx, method, path, body, authed)
	if err == nil || !authed {
		return data, err
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || !apiErr.Expired {
		return nil, err
	}

	if refreshErr := c.refresh(ctx); refreshErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, refreshErr)
	}
	// Exactly one retry with the fresh token.
	return c.send(ctx, method, path, body, authed)
}

// refresh exchanges the held refresh token for a new access token.
func (c *Client) refresh(ctx context.Context) error {
	c.mu.Lock()
	refresh := c.refreshToken
	c.mu.Unlock()
	if refresh == "" {
		return errors.New("no refresh token held")
	}

	data, err := c.send(ctx, http.MethodPost, "/refresh-token", map[string]string{"refreshToken": refresh}, false)
	if err != nil {
		return err
	}
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(data, &out); err != nil || out.AccessToken == "" {
		return errors.New("no access token in refresh response")
	}

	c.mu.Lock()
	c.accessToken = out.AccessToken
	c.mu.Unlock()
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}, authed bool) (json.RawMessage, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		c.mu.Lock()
		token := c.accessToken
		c.mu.Unlock()
		if token == "" {
			return nil, ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("decode response (%d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message, Expired: env.Expired}
	}
	return env.Data, nil
}
