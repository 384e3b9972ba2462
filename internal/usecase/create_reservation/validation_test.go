package create_reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	valid := &Request{
		UserID:    1,
		RoomID:    2,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "08:00",
		EndTime:   "12:00",
	}
	assert.NoError(t, validateRequest(valid))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing user", func(r *Request) { r.UserID = 0 }},
		{"missing room", func(r *Request) { r.RoomID = -1 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start", func(r *Request) { r.StartTime = "" }},
		{"malformed start", func(r *Request) { r.StartTime = "8am" }},
		{"inverted window", func(r *Request) { r.StartTime, r.EndTime = "12:00", "08:00" }},
		{"equal window", func(r *Request) { r.EndTime = r.StartTime }},
		{"zero equipment quantity", func(r *Request) {
			r.Equipment = []EquipmentSelection{{EquipmentID: 1, Quantity: 0}}
		}},
		{"oversized equipment quantity", func(r *Request) {
			r.Equipment = []EquipmentSelection{{EquipmentID: 1, Quantity: domain.MaxEquipmentSelectionQty + 1}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := *valid
			tt.mutate(&req)
			assert.ErrorIs(t, validateRequest(&req), ErrInvalidInput)
		})
	}
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

	assert.NoError(t, validateDate(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), now),
		"same day is allowed even after midnight")
	assert.NoError(t, validateDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), now))
	assert.ErrorIs(t, validateDate(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), now), ErrInvalidDate)
}

func TestValidateCatalogSlot(t *testing.T) {
	catalog := []domain.TimeSlot{
		{Start: "08:00", End: "12:00"},
		{Start: "12:00", End: "18:00"},
	}

	assert.NoError(t, validateCatalogSlot(catalog, &Request{StartTime: "12:00", EndTime: "18:00"}))
	assert.ErrorIs(t, validateCatalogSlot(catalog, &Request{StartTime: "13:00", EndTime: "14:00"}), ErrInvalidTimeSlot,
		"a window inside a slot is still rejected")
	assert.ErrorIs(t, validateCatalogSlot(nil, &Request{StartTime: "08:00", EndTime: "12:00"}), ErrInvalidTimeSlot)
}

func TestHasConflict(t *testing.T) {
	req := &Request{StartTime: "12:00", EndTime: "18:00"}

	assert.False(t, hasConflict(req, nil))
	assert.True(t, hasConflict(req, []*domain.Reservation{
		{StartTime: "12:00", EndTime: "18:00", Status: domain.StatusConfirmed},
	}))
	assert.True(t, hasConflict(req, []*domain.Reservation{
		{StartTime: "12:00", EndTime: "18:00", Status: domain.StatusWaitlisted},
	}), "a waitlisted reservation holds its place in line")
	assert.False(t, hasConflict(req, []*domain.Reservation{
		{StartTime: "12:00", EndTime: "18:00", Status: domain.StatusCancelled},
	}))
	assert.False(t, hasConflict(req, []*domain.Reservation{
		{StartTime: "08:00", EndTime: "12:00", Status: domain.StatusConfirmed},
	}), "edge-touching windows do not conflict")
}
