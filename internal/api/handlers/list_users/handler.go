package list_users

import (
	"errors"
	"net/http"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	usersService "github.com/foyer-bassa/FB-ReservationService/internal/service/users"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/users/models"
)

const (
	msgAccessDenied = "accès refusé"
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

// Handle GET /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListUsersRequest{
		RequesterID: middleware.GetUserID(r.Context()),
		Role:        middleware.GetRole(r.Context()),
		Query:       r.URL.Query().Get("query"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrAccessDenied):
			h.logger.Warn("GET /users - Access denied: requester_id=%d", req.RequesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users - Retrieved: requester_id=%d, count=%d", req.RequesterID, len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}
