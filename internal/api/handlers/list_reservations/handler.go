package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	reservationsService "github.com/foyer-bassa/FB-ReservationService/internal/service/reservations"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidRoomID = "identifiant de salle invalide"
	msgInvalidDate   = "date invalide, format attendu: AAAA-MM-JJ"
	msgInvalidFilter = "filtre de réservations invalide"
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

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListReservationsRequest{
		RequesterID: middleware.GetUserID(r.Context()),
		Role:        middleware.GetRole(r.Context()),
	}

	query := r.URL.Query()

	if roomIDStr := query.Get("roomId"); roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil || roomID <= 0 {
			h.logger.Warn("GET /reservations - Invalid room ID: %s", roomIDStr)
			handlers.RespondBadRequest(w, msgInvalidRoomID)
			return
		}
		req.RoomID = &roomID
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid start date: %s", startDateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid end date: %s", endDateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("GET /reservations - Access denied: requester_id=%d", req.RequesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reservations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Retrieved: requester_id=%d, count=%d", req.RequesterID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
