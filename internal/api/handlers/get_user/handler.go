package get_user

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

// Handle GET /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{userId} - Invalid ID: %s", vars["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	requesterID := middleware.GetUserID(r.Context())

	result, err := h.service.GetByID(r.Context(), userID, requesterID, middleware.GetRole(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("GET /users/{userId} - Not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId} - Access denied: requester_id=%d, user_id=%d", requesterID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users/{userId} - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId} - Retrieved: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
