package get_user_reservations

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
	msgInvalidUserID = "identifiant d'utilisateur invalide"
	msgInvalidStatus = "statut de réservation invalide"
	msgAccessDenied  = "accès refusé"
)

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

// Handle GET /api/v1/users/{userId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || targetUserID <= 0 {
		h.logger.Warn("GET /users/{userId}/reservations - Invalid ID: %s", vars["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	req := &models.GetUserReservationsRequest{
		TargetUserID: targetUserID,
		RequesterID:  middleware.GetUserID(r.Context()),
		Role:         middleware.GetRole(r.Context()),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/reservations - Access denied: requester_id=%d, target_user_id=%d", req.RequesterID, targetUserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/reservations - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{userId}/reservations - Failed: user_id=%d, error=%v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/reservations - Retrieved: user_id=%d, count=%d", targetUserID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
