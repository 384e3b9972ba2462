package update_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	usersService "github.com/foyer-bassa/FB-ReservationService/internal/service/users"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/users/models"
)

const (
	msgInvalidUserID      = "identifiant d'utilisateur invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidAccount     = "données de compte invalides"
	msgUserNotFound       = "utilisateur introuvable"
	msgAccessDenied       = "accès refusé"
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

// Handle PUT /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("PUT /users/{userId} - Invalid ID: %s", vars["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{userId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.RequesterID = middleware.GetUserID(r.Context())
	req.Role = middleware.GetRole(r.Context())

	result, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("PUT /users/{userId} - Invalid account data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidAccount)

		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("PUT /users/{userId} - Not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrAccessDenied):
			h.logger.Warn("PUT /users/{userId} - Access denied: requester_id=%d", req.RequesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /users/{userId} - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{userId} - Updated: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
