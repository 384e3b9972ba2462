package models

import (
	"errors"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

var (
	// ErrInvalidRole is returned on an unknown role literal.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidMembership is returned on an unknown membership literal.
	ErrInvalidMembership = errors.New("invalid membership status")
)

// Request models

// CreateUserRequest is the admin-side account creation payload.
type CreateUserRequest struct {
	RequesterID int64       `json:"-"`
	Role        domain.Role `json:"-"`

	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	UserRole   string `json:"role"`
	Membership string `json:"membership"`
}

// UpdateUserRequest rewrites the mutable profile fields.
type UpdateUserRequest struct {
	RequesterID int64       `json:"-"`
	Role        domain.Role `json:"-"`

	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	UserRole   string `json:"role"`
	Membership string `json:"membership"`
}

// ListUsersRequest searches accounts by name or email.
type ListUsersRequest struct {
	RequesterID int64       `json:"-"`
	Role        domain.Role `json:"-"`
	Query       string      `json:"query,omitempty"`
}

// Response models

// UserResponse is the account DTO. The password hash never leaves the
// service layer.
type UserResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	Membership string    `json:"membership"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UserListResponse wraps a list of accounts.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// Converters

// FromDomainUser converts the domain account to the DTO.
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		Membership: string(u.Membership),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// FromDomainUserList converts a list of domain accounts to the DTO.
func FromDomainUserList(users []*domain.User) *UserListResponse {
	if users == nil {
		return &UserListResponse{
			Users: []UserResponse{},
		}
	}

	resp := &UserListResponse{
		Users: make([]UserResponse, len(users)),
	}

	for i, user := range users {
		if u := FromDomainUser(user); u != nil {
			resp.Users[i] = *u
		}
	}

	return resp
}

// ToDomainRole converts a role literal with validation.
func ToDomainRole(role string) (domain.Role, error) {
	r := domain.Role(role)
	if !domain.ValidRole(r) {
		return "", ErrInvalidRole
	}
	return r, nil
}

// ToDomainMembership converts a membership literal with validation.
func ToDomainMembership(membership string) (domain.MembershipStatus, error) {
	m := domain.MembershipStatus(membership)
	if !domain.ValidMembershipStatus(m) {
		return "", ErrInvalidMembership
	}
	return m, nil
}
