package generate_report

import (
	"errors"
	"net/http"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	dashboardService "github.com/foyer-bassa/FB-ReservationService/internal/service/dashboard"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidFormat      = "le format doit être 'pdf' ou 'excel'"
	msgAccessDenied       = "accès refusé"
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

// Handle POST /api/v1/dashboard/reports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req dashboardService.ReportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /dashboard/reports - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.UserID = middleware.GetUserID(r.Context())
	req.Role = middleware.GetRole(r.Context())

	result, err := h.service.GenerateReport(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, dashboardService.ErrInvalidInput):
			h.logger.Warn("POST /dashboard/reports - Invalid format: %s", req.Format)
			handlers.RespondBadRequest(w, msgInvalidFormat)

		case errors.Is(err, dashboardService.ErrAccessDenied):
			h.logger.Warn("POST /dashboard/reports - Access denied: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /dashboard/reports - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dashboard/reports - Generated: format=%s, url=%s", req.Format, result.URL)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
