package register

import (
	"time"

	authService "github.com/foyer-bassa/FB-ReservationService/internal/service/auth"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Membership string `json:"membership,omitempty"`
}

// AuthResponse HTTP response model
type AuthResponse struct {
	Token     string                   `json:"token"`
	ExpiresAt string                   `json:"expiresAt"` // ISO 8601
	User      authService.UserResponse `json:"user"`
}

// ToServiceRequest converts the HTTP request to the service model.
func (r *RegisterRequest) ToServiceRequest() *authService.RegisterRequest {
	return &authService.RegisterRequest{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Password:   r.Password,
		Membership: r.Membership,
	}
}

// FromServiceResponse converts the service response to the HTTP model.
func FromServiceResponse(resp *authService.AuthResponse) *AuthResponse {
	return &AuthResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
		User:      resp.User,
	}
}
