package auth

import (
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// RegisterRequest is the self-service account creation payload.
type RegisterRequest struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Password   string
	Membership string
}

// LoginRequest is the credential pair presented at login.
type LoginRequest struct {
	Email    string
	Password string
}

// AuthResponse carries the issued token plus the account it belongs to.
type AuthResponse struct {
	Token     string
	ExpiresAt time.Time
	User      UserResponse
}

// UserResponse is the account DTO exposed by auth endpoints. The password
// hash never leaves the service.
type UserResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Membership string `json:"membership"`
}

// FromDomainUser converts the domain account to the DTO.
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		Membership: string(u.Membership),
	}
}
