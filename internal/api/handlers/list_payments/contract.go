package list_payments

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	paymentsService "github.com/foyer-bassa/FB-ReservationService/internal/service/payments"
)

type PaymentsService interface {
	ListByReservation(ctx context.Context, reservationID int64, userID int64, role domain.Role) (*paymentsService.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
