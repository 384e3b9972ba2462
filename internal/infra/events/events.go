// Package events publishes reservation lifecycle events to RabbitMQ.
// Publishing is best-effort: failures are logged and returned so callers
// can ignore them without interrupting the main request flow.
package events

// Event names carried in ReservationEvent.Event.
const (
	ReservationCreated   = "reservation.created"
	ReservationCancelled = "reservation.cancelled"
	ReservationPromoted  = "reservation.promoted"
)

// ReservationEvent is the payload published on reservation lifecycle
// transitions. It carries enough for downstream consumers to notify or
// run analytics without querying the primary database.
type ReservationEvent struct {
	Event         string `json:"event"`
	ReservationID int64  `json:"reservation_id"`
	UserID        int64  `json:"user_id"`
	RoomID        int64  `json:"room_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}
