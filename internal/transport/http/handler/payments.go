package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/application/payment"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/pkg/validate"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/transport/http/middleware"
)

// PaymentHandler exposes the payment saga to authenticated customers.
type PaymentHandler struct {
	svc payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req domain.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.svc.Process(r.Context(), claims.UserID, req)
	if err != nil {
		var ge *domain.GatewayError
		switch {
		case errors.Is(err, domain.ErrBadRequest):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &ge):
			// Mirror the gateway's verdict verbatim.
			writeError(w, ge.StatusCode, ge.Body)
		default:
			writeError(w, http.StatusInternalServerError, "payment failed")
		}
		return
	}
	writeData(w, http.StatusOK, resp)
}
