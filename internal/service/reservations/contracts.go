package reservations

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/internal/infra/events"
	"github.com/foyer-bassa/FB-ReservationService/internal/integrations/visioservice"
)

// ReservationRepository is the reservation storage contract.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	SetVisioLink(ctx context.Context, id int64, link string) error
	SetInterviewDone(ctx context.Context, id int64, done bool) error
}

// VisioClient creates video meeting links for confirmed reservations.
type VisioClient interface {
	CreateMeetingWithGracefulDegradation(ctx context.Context, request visioservice.CreateMeetingRequest) (*visioservice.Meeting, error)
}

// EventPublisher pushes lifecycle events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event events.ReservationEvent) error
}

// Logger writes structured service logs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
