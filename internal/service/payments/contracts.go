package payments

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// PaymentRepository is the payment storage contract.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByReservationID(ctx context.Context, reservationID int64) ([]*domain.Payment, error)
	SetJustificatif(ctx context.Context, id int64, url string) error
}

// ReservationRepository checks the reservation a payment refers to.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// Logger writes structured service logs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
