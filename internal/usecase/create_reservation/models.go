package create_reservation

import (
	"time"

	"github.com/foyer-bassa/FB-ReservationService/pkg/types"
)

// EquipmentSelection is one requested equipment line.
type EquipmentSelection struct {
	EquipmentID int64 // catalog equipment ID
	Quantity    int   // requested units
}

// Request is the reservation creation payload.
type Request struct {
	UserID    int64                // reserving member (from the token)
	RoomID    int64                // room to reserve
	Date      time.Time            // reservation date (no time component)
	StartTime types.TimeString     // window start, must match a catalog slot
	EndTime   types.TimeString     // window end, must match the same slot
	Equipment []EquipmentSelection // optional equipment for the quote
}

// Response is the created reservation.
type Response struct {
	ID         int64
	UserID     int64
	RoomID     int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     string // "confirmed" or "waitlisted"
	MemberType string

	// DevisID is set when quote generation succeeded. Generation is
	// best-effort, so nil is a normal outcome.
	DevisID *int64

	// VisioLink is set when the reservation was confirmed and the meeting
	// link could be created.
	VisioLink *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
