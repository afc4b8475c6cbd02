package orderservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/config"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReq() domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		UserID:               "u1",
		TransactionID:        "MP1",
		TransactionReference: "T1",
		ThirdPartyReference:  "abc123",
		Amount:               200,
		Cart:                 []domain.CartItem{{ID: 1, Name: "X", Price: 100, Quantity: 2}},
	}
}

func TestCreateOrder_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "svc-key", r.Header.Get("x-api-key"))

		var req domain.CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "MP1", req.TransactionID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(createEnvelope{
			Success: true,
			Data:    &domain.Order{OrderID: "ORD-1", UserID: "u1", TransactionID: "MP1"},
		})
	}))
	defer srv.Close()

	c := NewClient(&config.Config{OrderServiceURL: srv.URL, ServiceAPIKey: "svc-key"})
	o, err := c.CreateOrder(context.Background(), testReq())
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", o.OrderID)
}

func TestCreateOrder_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(createEnvelope{Success: false, Message: "could not record order"})
	}))
	defer srv.Close()

	c := NewClient(&config.Config{OrderServiceURL: srv.URL, ServiceAPIKey: "svc-key"})
	_, err := c.CreateOrder(context.Background(), testReq())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not record order")
}

func TestCreateOrder_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(&config.Config{OrderServiceURL: srv.URL, ServiceAPIKey: "svc-key"})
	_, err := c.CreateOrder(context.Background(), testReq())
	require.Error(t, err)
}
