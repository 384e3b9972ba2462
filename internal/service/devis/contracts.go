package devis

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// DevisRepository is the quote storage contract.
type DevisRepository interface {
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Devis, error)
}

// ReservationRepository checks the reservation the quote belongs to.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// Logger writes structured service logs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
