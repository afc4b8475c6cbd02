package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	jwtinfra "github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/jwt"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPaymentService struct{ mock.Mock }

func (m *mockPaymentService) Process(ctx context.Context, userID string, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	args := m.Called(ctx, userID, req)
	if r, _ := args.Get(0).(*domain.PaymentResponse); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func payRequest(t *testing.T, body string, authed bool) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/payment", strings.NewReader(body))
	if authed {
		ctx := context.WithValue(req.Context(), middleware.ClaimsKey, &jwtinfra.Claims{UserID: "u1", Email: "alice@example.com"})
		req = req.WithContext(ctx)
	}
	return req
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

const validBody = `{"cart":[{"id":1,"name":"X","price":100,"quantity":2}],"total":200}`

func TestPay_Success(t *testing.T) {
	svc := &mockPaymentService{}
	svc.On("Process", mock.Anything, "u1", mock.MatchedBy(func(req domain.PaymentRequest) bool {
		return req.Total == 200 && len(req.Cart) == 1
	})).Return(&domain.PaymentResponse{
		TransactionID: "MP1",
		OrderID:       "ORD-01HTEST",
		Performance:   domain.StepTimings{Total: 1.234},
	}, nil)

	rr := httptest.NewRecorder()
	NewPaymentHandler(svc).Pay(rr, payRequest(t, validBody, true))

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)

	data, _ := json.Marshal(env.Data)
	var resp domain.PaymentResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, "MP1", resp.TransactionID)
	assert.True(t, strings.HasPrefix(resp.OrderID, "ORD-"))
	assert.GreaterOrEqual(t, resp.Performance.Total, 0.0)
}

func TestPay_ZeroTotalRejectedBeforeService(t *testing.T) {
	svc := &mockPaymentService{}

	rr := httptest.NewRecorder()
	body := `{"cart":[{"id":1,"name":"X","price":100,"quantity":2}],"total":0}`
	NewPaymentHandler(svc).Pay(rr, payRequest(t, body, true))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
	svc.AssertNotCalled(t, "Process", mock.Anything, mock.Anything, mock.Anything)
}

func TestPay_NegativeTotalReturnsValidationError(t *testing.T) {
	svc := &mockPaymentService{}
	svc.On("Process", mock.Anything, "u1", mock.Anything).
		Return(nil, domain.ErrBadRequest)

	rr := httptest.NewRecorder()
	body := `{"cart":[{"id":1,"name":"X","price":100,"quantity":2}],"total":-5}`
	NewPaymentHandler(svc).Pay(rr, payRequest(t, body, true))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
}

func TestPay_GatewayErrorMirrored(t *testing.T) {
	svc := &mockPaymentService{}
	svc.On("Process", mock.Anything, "u1", mock.Anything).
		Return(nil, &domain.GatewayError{StatusCode: http.StatusUnprocessableEntity, Body: "insufficient balance"})

	rr := httptest.NewRecorder()
	NewPaymentHandler(svc).Pay(rr, payRequest(t, validBody, true))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "insufficient balance")
}

func TestPay_MissingClaims(t *testing.T) {
	svc := &mockPaymentService{}

	rr := httptest.NewRecorder()
	NewPaymentHandler(svc).Pay(rr, payRequest(t, validBody, false))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	svc.AssertNotCalled(t, "Process", mock.Anything, mock.Anything, mock.Anything)
}

func TestPay_MalformedBody(t *testing.T) {
	svc := &mockPaymentService{}

	rr := httptest.NewRecorder()
	NewPaymentHandler(svc).Pay(rr, payRequest(t, `{not json`, true))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPay_UnexpectedErrorIsGeneric(t *testing.T) {
	svc := &mockPaymentService{}
	svc.On("Process", mock.Anything, "u1", mock.Anything).
		Return(nil, assert.AnError)

	rr := httptest.NewRecorder()
	NewPaymentHandler(svc).Pay(rr, payRequest(t, validBody, true))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.NotContains(t, env.Message, "assert.AnError", "internal detail must not leak")
}
