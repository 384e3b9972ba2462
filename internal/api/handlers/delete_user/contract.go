package delete_user

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

type UsersService interface {
	Delete(ctx context.Context, id int64, requesterID int64, role domain.Role) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
