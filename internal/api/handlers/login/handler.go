package login

import (
	"errors"
	"net/http"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/api/handlers"
	authService "github.com/foyer-bassa/FB-ReservationService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidCredentials = "adresse e-mail ou mot de passe incorrect"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse HTTP response model
type AuthResponse struct {
	Token     string                   `json:"token"`
	ExpiresAt string                   `json:"expiresAt"` // ISO 8601
	User      authService.UserResponse `json:"user"`
}

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &authService.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to sign in: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Signed in: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, &AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
		User:      result.User,
	})
}
