package get_available_slots

import (
	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// annotateSlots marks each catalog slot available or not against the
// reservations of the day. Pure function: same inputs, same output.
//
// Only pending and confirmed reservations block a slot. Waitlisted
// reservations are themselves waiting for the slot, and cancelled ones
// never block anything.
//
// Overlap is half-open: a reservation ending exactly where a slot starts
// (or starting exactly where it ends) does not block it.
//
// Examples:
// - slot 12:00-18:00, reservation 08:00-12:00 -> available (they touch)
// - slot 12:00-18:00, reservation 11:00-13:00 -> unavailable
// - slot 12:00-18:00, cancelled 12:00-18:00   -> available
func annotateSlots(catalog []domain.TimeSlot, reservations []*domain.Reservation) []Slot {
	result := make([]Slot, len(catalog))

	for i, window := range catalog {
		result[i] = Slot{
			StartTime:   window.Start,
			EndTime:     window.End,
			IsAvailable: !isBlocked(window, reservations),
		}
	}

	return result
}

func isBlocked(window domain.TimeSlot, reservations []*domain.Reservation) bool {
	for _, reservation := range reservations {
		if !reservation.BlocksSlot() {
			continue
		}
		if window.Overlaps(reservation.StartTime, reservation.EndTime) {
			return true
		}
	}
	return false
}
