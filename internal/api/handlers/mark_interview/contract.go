package mark_interview

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	MarkInterview(ctx context.Context, reservationID int64, req *models.MarkInterviewRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
