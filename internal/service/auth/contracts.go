package auth

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// UserRepository is the account storage used by registration and login.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Logger writes structured service logs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
