package update_user

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/service/users/models"
)

type UsersService interface {
	Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
