package attach_justificatif

import (
	"context"

	paymentsService "github.com/foyer-bassa/FB-ReservationService/internal/service/payments"
)

type PaymentsService interface {
	AttachJustificatif(ctx context.Context, paymentID int64, req *paymentsService.AttachJustificatifRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
