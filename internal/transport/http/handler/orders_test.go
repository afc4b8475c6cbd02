package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	jwtinfra "github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/jwt"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockOrderService struct{ mock.Mock }

func (m *mockOrderService) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderService) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if o, _ := args.Get(0).([]domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderService) GetByID(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderService) GetByTransactionID(ctx context.Context, transactionID, userID string) (*domain.Order, error) {
	args := m.Called(ctx, transactionID, userID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func authedGet(path, orderParam, orderValue string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(orderParam, orderValue)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.ClaimsKey, &jwtinfra.Claims{UserID: "u1", Email: "alice@example.com"})
	return req.WithContext(ctx)
}

func TestOrderCreate_Valid(t *testing.T) {
	svc := &mockOrderService{}
	svc.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Order{OrderID: "ORD-1", UserID: "u1", Status: domain.OrderStatusPaid}, nil)

	body := `{"userId":"u1","transactionId":"MP1","transactionReference":"T1","thirdPartyReference":"abc","amount":200,"cart":[{"id":1,"name":"X","price":100,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()
	NewOrderHandler(svc).Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, decodeEnvelope(t, rr).Success)
}

func TestOrderCreate_MissingFields(t *testing.T) {
	svc := &mockOrderService{}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"userId":"u1"}`))
	rr := httptest.NewRecorder()
	NewOrderHandler(svc).Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderGet_CrossUserIsNotFound(t *testing.T) {
	svc := &mockOrderService{}
	svc.On("GetByID", mock.Anything, "ORD-1", "u1").Return(nil, domain.ErrNotFound)

	rr := httptest.NewRecorder()
	NewOrderHandler(svc).Get(rr, authedGet("/orders/ORD-1", "orderID", "ORD-1"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
}

func TestOrderGetByTransaction(t *testing.T) {
	svc := &mockOrderService{}
	svc.On("GetByTransactionID", mock.Anything, "MP1", "u1").
		Return(&domain.Order{OrderID: "ORD-1", TransactionID: "MP1", UserID: "u1"}, nil)

	rr := httptest.NewRecorder()
	NewOrderHandler(svc).GetByTransaction(rr, authedGet("/orders/transaction/MP1", "transactionID", "MP1"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeEnvelope(t, rr).Success)
}

func TestOrderList_ScopedToCaller(t *testing.T) {
	svc := &mockOrderService{}
	svc.On("ListByUser", mock.Anything, "u1").Return([]domain.Order{{OrderID: "ORD-1", UserID: "u1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	ctx := context.WithValue(req.Context(), middleware.ClaimsKey, &jwtinfra.Claims{UserID: "u1"})
	rr := httptest.NewRecorder()
	NewOrderHandler(svc).List(rr, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}
