package create_reservation

import (
	"context"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/internal/infra/events"
	"github.com/foyer-bassa/FB-ReservationService/internal/integrations/visioservice"
)

// ReservationRepository is the reservation storage contract.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	SetDevisID(ctx context.Context, id int64, devisID int64) error
	SetVisioLink(ctx context.Context, id int64, link string) error
}

// RoomRepository checks the room exists.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// UserRepository loads the reserving member.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// EquipmentRepository validates and stores the equipment selection.
type EquipmentRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	SaveSelections(ctx context.Context, reservationID int64, selections []domain.EquipmentSelection) error
}

// DevisRepository stores the generated quote.
type DevisRepository interface {
	Create(ctx context.Context, d *domain.Devis) (*domain.Devis, error)
}

// VisioClient creates video meeting links for confirmed reservations.
type VisioClient interface {
	CreateMeetingWithGracefulDegradation(ctx context.Context, request visioservice.CreateMeetingRequest) (*visioservice.Meeting, error)
}

// EventPublisher pushes lifecycle events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event events.ReservationEvent) error
}

// TransactionManager runs the conflict check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider returns the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger writes structured usecase logs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
