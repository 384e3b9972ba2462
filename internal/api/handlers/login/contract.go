package login

import (
	"context"

	authService "github.com/foyer-bassa/FB-ReservationService/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, req *authService.LoginRequest) (*authService.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
