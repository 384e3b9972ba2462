package get_reservation

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, id int64, userID int64, role domain.Role) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
