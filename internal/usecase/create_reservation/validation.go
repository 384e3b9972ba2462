package create_reservation

import (
	"fmt"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// validateRequest validates the request data.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	for _, sel := range req.Equipment {
		if sel.EquipmentID <= 0 {
			return fmt.Errorf("%w: equipmentID must be positive", ErrInvalidInput)
		}
		if sel.Quantity <= 0 || sel.Quantity > domain.MaxEquipmentSelectionQty {
			return fmt.Errorf("%w: equipment quantity must be between 1 and %d", ErrInvalidInput, domain.MaxEquipmentSelectionQty)
		}
	}

	return nil
}

// validateDate rejects reservations for past dates.
func validateDate(reservationDate time.Time, now time.Time) error {
	dateOnly := time.Date(reservationDate.Year(), reservationDate.Month(), reservationDate.Day(), 0, 0, 0, 0, reservationDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateCatalogSlot requires the requested window to exactly match one
// catalog slot. Arbitrary windows are rejected even when they would fit
// inside a slot.
func validateCatalogSlot(catalog []domain.TimeSlot, req *Request) error {
	for _, window := range catalog {
		if window.Matches(req.StartTime, req.EndTime) {
			return nil
		}
	}
	return ErrInvalidTimeSlot
}

// hasConflict reports whether any active reservation overlaps the
// requested window. Half-open comparison: edge-touching windows do not
// conflict. Waitlisted reservations count here: a slot with a waiting
// reservation sends the newcomer to the waitlist behind it.
func hasConflict(req *Request, reservations []*domain.Reservation) bool {
	for _, reservation := range reservations {
		if !reservation.IsActive() {
			continue
		}
		if reservation.StartTime.IsBefore(req.EndTime) && req.StartTime.IsBefore(reservation.EndTime) {
			return true
		}
	}
	return false
}
