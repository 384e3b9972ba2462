package create_payment

import (
	"errors"
	"net/http"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	paymentsService "github.com/foyer-bassa/FB-ReservationService/internal/service/payments"
)

const (
	msgInvalidRequestBody  = "corps de requête invalide"
	msgInvalidPayment      = "données de paiement invalides"
	msgReservationNotFound = "réservation introuvable"
	msgAccessDenied        = "accès refusé"
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

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req paymentsService.CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.UserID = middleware.GetUserID(r.Context())
	req.Role = middleware.GetRole(r.Context())

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrInvalidInput):
			h.logger.Warn("POST /payments - Invalid payment: reservation_id=%d, error=%v", req.ReservationID, err)
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, paymentsService.ErrReservationNotFound):
			h.logger.Warn("POST /payments - Reservation not found: reservation_id=%d", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, paymentsService.ErrAccessDenied):
			h.logger.Warn("POST /payments - Access denied: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /payments - Failed: reservation_id=%d, error=%v", req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Recorded: payment_id=%d, reservation_id=%d, amount=%.0f", result.ID, result.ReservationID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
