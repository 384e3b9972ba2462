package mark_interview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	reservationsService "github.com/foyer-bassa/FB-ReservationService/internal/service/reservations"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "identifiant de réservation invalide"
	msgInvalidRequestBody   = "corps de requête invalide"
	msgReservationNotFound  = "réservation introuvable"
	msgAccessDenied         = "accès refusé"
)

// MarkInterviewRequest HTTP request model
type MarkInterviewRequest struct {
	Done bool `json:"done"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/interview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{reservationId}/interview - Invalid ID: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req MarkInterviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{reservationId}/interview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.GetUserID(r.Context())

	err = h.service.MarkInterview(r.Context(), reservationID, &models.MarkInterviewRequest{
		UserID: userID,
		Role:   middleware.GetRole(r.Context()),
		Done:   req.Done,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{reservationId}/interview - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{reservationId}/interview - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /reservations/{reservationId}/interview - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{reservationId}/interview - Updated: reservation_id=%d, done=%t", reservationID, req.Done)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
