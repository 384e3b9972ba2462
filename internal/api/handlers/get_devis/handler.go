package get_devis

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	devisService "github.com/foyer-bassa/FB-ReservationService/internal/service/devis"
)

const (
	msgInvalidReservationID = "identifiant de réservation invalide"
	msgReservationNotFound  = "réservation introuvable"
	msgDevisNotFound        = "aucun devis pour cette réservation"
	msgAccessDenied         = "accès refusé"
)

type Handler struct {
	service DevisService
	logger  Logger
}

func NewHandler(service DevisService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}/devis
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("GET /reservations/{reservationId}/devis - Invalid ID: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID := middleware.GetUserID(r.Context())

	result, err := h.service.GetByReservationID(r.Context(), reservationID, userID, middleware.GetRole(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, devisService.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{reservationId}/devis - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, devisService.ErrDevisNotFound):
			h.logger.Warn("GET /reservations/{reservationId}/devis - No devis: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgDevisNotFound)

		case errors.Is(err, devisService.ErrAccessDenied):
			h.logger.Warn("GET /reservations/{reservationId}/devis - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /reservations/{reservationId}/devis - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{reservationId}/devis - Retrieved: devis_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
