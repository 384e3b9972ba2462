package get_available_slots

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// ReservationRepository loads the reservations of a room for one date.
type ReservationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// RoomRepository checks the room exists.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger writes structured usecase logs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
