package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veritable/veritable-go/internal/middleware"
	"github.com/veritable/veritable-go/internal/model"
	"github.com/veritable/veritable-go/internal/service"
)

// PaymentHandler handles HTTP requests for subscription purchases.
type PaymentHandler struct {
	service *service.SubscriptionService
	dev     bool
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc *service.SubscriptionService, dev bool) *PaymentHandler {
	return &PaymentHandler{service: svc, dev: dev}
}

// HandleSubscribe handles POST /payments/subscribe requests.
func (h *PaymentHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Subscribe(r.Context(), principal.ID, req.Plan)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlan):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			internalError(w, err, h.dev)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
