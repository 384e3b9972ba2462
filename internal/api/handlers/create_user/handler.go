package create_user

import (
	"errors"
	"net/http"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	usersService "github.com/foyer-bassa/FB-ReservationService/internal/service/users"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidAccount     = "données de compte invalides"
	msgEmailTaken         = "cette adresse e-mail est déjà utilisée"
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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.RequesterID = middleware.GetUserID(r.Context())
	req.Role = middleware.GetRole(r.Context())

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid account data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAccount)

		case errors.Is(err, usersService.ErrEmailTaken):
			h.logger.Warn("POST /users - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, usersService.ErrAccessDenied):
			h.logger.Warn("POST /users - Access denied: requester_id=%d", req.RequesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /users - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - Created: user_id=%d, role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
