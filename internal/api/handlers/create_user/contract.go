package create_user

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/service/users/models"
)

type UsersService interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
