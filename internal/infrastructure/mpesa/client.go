// Package mpesa wraps the outbound C2B charge call to the M-Pesa Mozambique
// open API. The wire protocol is one JSON POST; retries, if any, belong to
// the caller.
package mpesa

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

// chargeTimeout bounds the whole outbound call. A timeout is reported as a
// gateway failure, which aborts the payment saga.
const chargeTimeout = 30 * time.Second

const c2bPath = "/ipg/v1x/c2bPayment/singleStage/"

// ChargeResult is the successful gateway outcome.
type ChargeResult struct {
	TransactionID  string
	ConversationID string
	ResponseCode   string
	ResponseDesc   string
}

// Client issues C2B charges against the M-Pesa API with a static bearer key.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	providerCode string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: chargeTimeout},
		baseURL:      strings.TrimRight(cfg.MpesaBaseURL, "/"),
		apiKey:       cfg.MpesaAPIKey,
		providerCode: cfg.MpesaProviderCode,
	}
}

type c2bRequest struct {
	Amount               string `json:"input_Amount"`
	CustomerMSISDN       string `json:"input_CustomerMSISDN"`
	ThirdPartyReference  string `json:"input_ThirdPartyReference"`
	TransactionReference string `json:"input_TransactionReference"`
	ServiceProviderCode  string `json:"input_ServiceProviderCode"`
}

type c2bResponse struct {
	TransactionID  string `json:"output_TransactionID"`
	ConversationID string `json:"output_ConversationID"`
	ResponseCode   string `json:"output_ResponseCode"`
	ResponseDesc   string `json:"output_ResponseDesc"`
}

// Charge submits a single-stage C2B payment. A non-2xx response or transport
// failure returns *domain.GatewayError; the caller treats any error as fatal
// to the payment.
func (c *Client) Charge(ctx context.Context, amount float64, phone, transactionRef, thirdPartyRef string) (*ChargeResult, error) {
	body, err := json.Marshal(c2bRequest{
		Amount:               fmt.Sprintf("%.2f", amount),
		CustomerMSISDN:       NormalizeMSISDN(phone),
		ThirdPartyReference:  thirdPartyRef,
		TransactionReference: transactionRef,
		ServiceProviderCode:  c.providerCode,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal charge request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, chargeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c2bPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build charge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Origin", "*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.GatewayError{StatusCode: http.StatusServiceUnavailable, Body: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var out c2bResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, &domain.GatewayError{StatusCode: resp.StatusCode, Body: "unparseable gateway response"}
	}
	return &ChargeResult{
		TransactionID:  out.TransactionID,
		ConversationID: out.ConversationID,
		ResponseCode:   out.ResponseCode,
		ResponseDesc:   out.ResponseDesc,
	}, nil
}

// NormalizeMSISDN canonicalizes a Mozambican phone number to the 258-prefixed
// form the gateway expects. Idempotent for already-prefixed numbers.
func NormalizeMSISDN(phone string) string {
	p := strings.TrimSpace(phone)
	p = strings.TrimPrefix(p, "+")
	p = strings.ReplaceAll(p, " ", "")
	if strings.HasPrefix(p, "258") {
		return p
	}
	return "258" + p
}
