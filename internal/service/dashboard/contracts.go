package dashboard

import (
	"context"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// ReservationRepository counts reservations for the stat blocks.
type ReservationRepository interface {
	CountInPeriod(ctx context.Context, filter domain.ReservationsFilter) (int64, error)
}

// PaymentRepository aggregates revenue.
type PaymentRepository interface {
	SumInPeriod(ctx context.Context, from, to time.Time) (float64, error)
}

// UserRepository breaks members down by membership status.
type UserRepository interface {
	CountByMembership(ctx context.Context) (map[domain.MembershipStatus]int64, error)
}

// RoomRepository provides the occupancy denominator.
type RoomRepository interface {
	Count(ctx context.Context) (int64, error)
}

// Logger writes structured service logs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
