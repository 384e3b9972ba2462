package register

import (
	"context"

	authService "github.com/foyer-bassa/FB-ReservationService/internal/service/auth"
)

type AuthService interface {
	Register(ctx context.Context, req *authService.RegisterRequest) (*authService.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
