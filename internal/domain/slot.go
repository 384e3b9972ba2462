package domain

import "github.com/foyer-bassa/FB-ReservationService/pkg/types"

// TimeSlot is one window of the fixed daily catalog (typically three per
// day). Slots are configuration-level values, never persisted per
// reservation.
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether the half-open windows [s.Start, s.End) and
// [start, end) intersect. Edge-touching windows (s.End == start) do NOT
// overlap, which is what keeps back-to-back slots independently bookable.
func (s TimeSlot) Overlaps(start, end types.TimeString) bool {
	return s.Start.IsBefore(end) && start.IsBefore(s.End)
}

// Matches reports whether a requested window is exactly this catalog slot.
func (s TimeSlot) Matches(start, end types.TimeString) bool {
	return s.Start == start && s.End == end
}

// AnnotatedSlot is a catalog slot tagged with its availability for one
// date/room, as served on the booking calendar.
type AnnotatedSlot struct {
	Start       types.TimeString
	End         types.TimeString
	IsAvailable bool
}
