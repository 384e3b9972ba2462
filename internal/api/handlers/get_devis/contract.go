package get_devis

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	devisService "github.com/foyer-bassa/FB-ReservationService/internal/service/devis"
)

type DevisService interface {
	GetByReservationID(ctx context.Context, reservationID int64, userID int64, role domain.Role) (*devisService.DevisResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
