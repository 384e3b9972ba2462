package domain

import (
	"time"

	"github.com/foyer-bassa/FB-ReservationService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusWaitlisted ReservationStatus = "waitlisted"
	StatusCancelled  ReservationStatus = "cancelled"
)

// ValidStatus reports whether s is one of the canonical statuses.
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusWaitlisted, StatusCancelled:
		return true
	}
	return false
}

// Reservation represents a booking of a room at the Foyer Bassa for one
// of the catalog time slots. Reservations are never hard-deleted;
// cancellation is a status transition.
type Reservation struct {
	ID         int64
	UserID     int64
	RoomID     int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     ReservationStatus
	MemberType MembershipStatus

	// DevisID links the quote generated for this reservation, if quote
	// generation succeeded (it is best-effort).
	DevisID *int64

	// InterviewDone records whether the pre-event video interview with the
	// club staff took place.
	InterviewDone bool

	// VisioLink is the video meeting link created when the reservation is
	// confirmed. Best-effort as well.
	VisioLink *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation still occupies its window for
// conflict purposes. Only cancellation frees the window.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// BlocksSlot reports whether the reservation makes its slot show as
// unavailable on the calendar. Waitlisted reservations do not block:
// they are themselves waiting for the slot.
func (r *Reservation) BlocksSlot() bool {
	return r.Status == StatusConfirmed || r.Status == StatusPending
}

// CanBeCancelled reports whether a cancel transition is allowed.
// Cancellation is irreversible, so a cancelled reservation stays cancelled.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status != StatusCancelled
}

// CanBePromoted reports whether the manual waitlist promotion applies.
func (r *Reservation) CanBePromoted() bool {
	return r.Status == StatusWaitlisted
}

// IsCancelled reports whether the reservation has been cancelled.
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// ReservationsFilter is the flexible listing filter used by managers and
// by the availability computation (one-day range, room scoped).
type ReservationsFilter struct {
	RoomID          *int64             // nil = all rooms
	UserID          *int64             // nil = all users
	StartDate       *time.Time         // nil = unbounded
	EndDate         *time.Time         // nil = unbounded
	Status          *ReservationStatus // nil = any
	IncludeInactive bool               // include cancelled reservations
}
