package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/application/notification"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/pkg/validate"
)

// EmailHandler handles the internal send-email endpoint.
type EmailHandler struct {
	svc notification.Service
}

func NewEmailHandler(svc notification.Service) *EmailHandler {
	return &EmailHandler{svc: svc}
}

func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.SendOrderConfirmation(r.Context(), req); err != nil {
		writeError(w, http.StatusInternalServerError, "could not send notification")
		return
	}
	writeMessage(w, http.StatusOK, "notification sent")
}
