package create_payment

import (
	"context"

	paymentsService "github.com/foyer-bassa/FB-ReservationService/internal/service/payments"
)

type PaymentsService interface {
	Create(ctx context.Context, req *paymentsService.CreatePaymentRequest) (*paymentsService.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
