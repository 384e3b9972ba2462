package decide_sponsorship

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	sponsorshipsService "github.com/foyer-bassa/FB-ReservationService/internal/service/sponsorships"
)

const (
	msgInvalidSponsorshipID = "identifiant de parrainage invalide"
	msgInvalidRequestBody   = "corps de requête invalide"
	msgInvalidDecision      = "la décision doit être 'approved' ou 'rejected'"
	msgSponsorshipNotFound  = "parrainage introuvable"
	msgAccessDenied         = "accès refusé"
	msgAlreadyDecided       = "ce parrainage a déjà été traité"
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

// Handle PATCH /api/v1/sponsorships/{sponsorshipId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sponsorshipID, err := strconv.ParseInt(vars["sponsorshipId"], 10, 64)
	if err != nil || sponsorshipID <= 0 {
		h.logger.Warn("PATCH /sponsorships/{sponsorshipId}/status - Invalid ID: %s", vars["sponsorshipId"])
		handlers.RespondBadRequest(w, msgInvalidSponsorshipID)
		return
	}

	var req sponsorshipsService.DecideSponsorshipRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sponsorships/{sponsorshipId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.UserID = middleware.GetUserID(r.Context())
	req.Role = middleware.GetRole(r.Context())

	result, err := h.service.Decide(r.Context(), sponsorshipID, &req)
	if err != nil {
		switch {
		case errors.Is(err, sponsorshipsService.ErrInvalidInput):
			h.logger.Warn("PATCH /sponsorships/{sponsorshipId}/status - Invalid decision: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidDecision)

		case errors.Is(err, sponsorshipsService.ErrSponsorshipNotFound):
			h.logger.Warn("PATCH /sponsorships/{sponsorshipId}/status - Not found: sponsorship_id=%d", sponsorshipID)
			handlers.RespondNotFound(w, msgSponsorshipNotFound)

		case errors.Is(err, sponsorshipsService.ErrAccessDenied):
			h.logger.Warn("PATCH /sponsorships/{sponsorshipId}/status - Access denied: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, sponsorshipsService.ErrAlreadyDecided):
			h.logger.Warn("PATCH /sponsorships/{sponsorshipId}/status - Already decided: sponsorship_id=%d", sponsorshipID)
			handlers.RespondConflict(w, msgAlreadyDecided)

		default:
			h.logger.Error("PATCH /sponsorships/{sponsorshipId}/status - Failed: sponsorship_id=%d, error=%v", sponsorshipID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sponsorships/{sponsorshipId}/status - Decided: sponsorship_id=%d, status=%s", sponsorshipID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
