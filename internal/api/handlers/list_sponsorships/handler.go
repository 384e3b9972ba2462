package list_sponsorships

import (
	"net/http"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
)

type Handler struct {
	service SponsorshipsService
	logger  Logger
}

func NewHandler(service SponsorshipsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sponsorships
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.service.List(r.Context(), userID, middleware.GetRole(r.Context()))
	if err != nil {
		h.logger.Error("GET /sponsorships - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sponsorships - Retrieved: user_id=%d, count=%d", userID, len(result.Sponsorships))
	handlers.RespondJSON(w, http.StatusOK, result)
}
