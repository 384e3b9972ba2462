package dashboard_stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	dashboardService "github.com/foyer-bassa/FB-ReservationService/internal/service/dashboard"
)

const (
	msgInvalidDate   = "date invalide, format attendu: AAAA-MM-JJ"
	msgInvalidPeriod = "période invalide"
	msgAccessDenied  = "accès refusé"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /dashboard/stats - Invalid from date: %s", query.Get("from"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /dashboard/stats - Invalid to date: %s", query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &dashboardService.StatsRequest{
		UserID: middleware.GetUserID(r.Context()),
		Role:   middleware.GetRole(r.Context()),
		From:   from,
		To:     to,
	}

	result, err := h.service.Stats(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, dashboardService.ErrInvalidInput):
			h.logger.Warn("GET /dashboard/stats - Invalid period: from=%s, to=%s", query.Get("from"), query.Get("to"))
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, dashboardService.ErrAccessDenied):
			h.logger.Warn("GET /dashboard/stats - Access denied: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /dashboard/stats - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard/stats - Retrieved: from=%s, to=%s, total=%d", result.From, result.To, result.TotalReservations)
	handlers.RespondJSON(w, http.StatusOK, result)
}
