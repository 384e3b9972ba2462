package list_payments

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
	msgInvalidReservationID = "identifiant de réservation invalide"
	msgReservationNotFound  = "réservation introuvable"
	msgAccessDenied         = "accès refusé"
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

// Handle GET /api/v1/reservations/{reservationId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("GET /reservations/{reservationId}/payments - Invalid ID: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID := middleware.GetUserID(r.Context())

	result, err := h.service.ListByReservation(r.Context(), reservationID, userID, middleware.GetRole(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{reservationId}/payments - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, paymentsService.ErrAccessDenied):
			h.logger.Warn("GET /reservations/{reservationId}/payments - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /reservations/{reservationId}/payments - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{reservationId}/payments - Retrieved: reservation_id=%d, count=%d", reservationID, len(result.Payments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
