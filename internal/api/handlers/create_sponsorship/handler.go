package create_sponsorship

import (
	"errors"
	"net/http"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	sponsorshipsService "github.com/foyer-bassa/FB-ReservationService/internal/service/sponsorships"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidSponsorship = "données de parrainage invalides"
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

// Handle POST /api/v1/sponsorships
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req sponsorshipsService.CreateSponsorshipRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sponsorships - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.SponsorID = middleware.GetUserID(r.Context())

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sponsorshipsService.ErrInvalidInput):
			h.logger.Warn("POST /sponsorships - Invalid data: sponsor_id=%d, error=%v", req.SponsorID, err)
			handlers.RespondBadRequest(w, msgInvalidSponsorship)

		default:
			h.logger.Error("POST /sponsorships - Failed: sponsor_id=%d, error=%v", req.SponsorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sponsorships - Created: sponsorship_id=%d, sponsor_id=%d", result.ID, result.SponsorID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
