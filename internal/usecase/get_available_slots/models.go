package get_available_slots

import (
	"time"

	"github.com/foyer-bassa/FB-ReservationService/pkg/types"
)

// Request asks for the slot availability of one room on one date.
type Request struct {
	RoomID int64     // room to inspect
	Date   time.Time // date to inspect (no time component)
}

// Response lists every catalog slot for the date with its availability.
type Response struct {
	Date   time.Time // echoed request date
	RoomID int64     // echoed room
	Slots  []Slot    // full catalog, annotated
}

// Slot is one catalog window with its availability flag.
type Slot struct {
	StartTime   types.TimeString // slot start, e.g. "08:00"
	EndTime     types.TimeString // slot end, e.g. "12:00"
	IsAvailable bool             // false when a pending or confirmed reservation overlaps
}
