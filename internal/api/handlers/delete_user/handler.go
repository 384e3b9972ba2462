package delete_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	usersService "github.com/foyer-bassa/FB-ReservationService/internal/service/users"
)

const (
	msgInvalidUserID = "identifiant d'utilisateur invalide"
	msgUserNotFound  = "utilisateur introuvable"
	msgAccessDenied  = "accès refusé"
	msgUserInUse     = "impossible de supprimer un compte avec des réservations"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("DELETE /users/{userId} - Invalid ID: %s", vars["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	requesterID := middleware.GetUserID(r.Context())

	err = h.service.Delete(r.Context(), userID, requesterID, middleware.GetRole(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("DELETE /users/{userId} - Not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrAccessDenied):
			h.logger.Warn("DELETE /users/{userId} - Access denied: requester_id=%d", requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, usersService.ErrUserInUse):
			h.logger.Warn("DELETE /users/{userId} - Has reservations: user_id=%d", userID)
			handlers.RespondConflict(w, msgUserInUse)

		default:
			h.logger.Error("DELETE /users/{userId} - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{userId} - Deleted: user_id=%d, requester_id=%d", userID, requesterID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
