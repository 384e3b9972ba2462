package get_user

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/users/models"
)

type UsersService interface {
	GetByID(ctx context.Context, id int64, requesterID int64, role domain.Role) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
