package list_users

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/service/users/models"
)

type UsersService interface {
	List(ctx context.Context, req *models.ListUsersRequest) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
