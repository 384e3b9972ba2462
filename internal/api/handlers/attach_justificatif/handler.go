package attach_justificatif

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	paymentsService "github.com/foyer-bassa/FB-ReservationService/internal/service/payments"
)

const (
	msgInvalidPaymentID   = "identifiant de paiement invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgMissingURL         = "l'URL du justificatif est requise"
	msgPaymentNotFound    = "paiement introuvable"
	msgAccessDenied       = "accès refusé"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/payments/{paymentId}/justificatif
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := strconv.ParseInt(vars["paymentId"], 10, 64)
	if err != nil || paymentID <= 0 {
		h.logger.Warn("PATCH /payments/{paymentId}/justificatif - Invalid ID: %s", vars["paymentId"])
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	var req paymentsService.AttachJustificatifRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /payments/{paymentId}/justificatif - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.UserID = middleware.GetUserID(r.Context())
	req.Role = middleware.GetRole(r.Context())

	err = h.service.AttachJustificatif(r.Context(), paymentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /payments/{paymentId}/justificatif - Missing URL: payment_id=%d", paymentID)
			handlers.RespondBadRequest(w, msgMissingURL)

		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			h.logger.Warn("PATCH /payments/{paymentId}/justificatif - Not found: payment_id=%d", paymentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, paymentsService.ErrAccessDenied):
			h.logger.Warn("PATCH /payments/{paymentId}/justificatif - Access denied: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /payments/{paymentId}/justificatif - Failed: payment_id=%d, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /payments/{paymentId}/justificatif - Attached: payment_id=%d", paymentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
