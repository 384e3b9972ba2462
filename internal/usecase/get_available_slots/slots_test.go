package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

var testCatalog = []domain.TimeSlot{
	{Start: "08:00", End: "12:00"},
	{Start: "12:00", End: "18:00"},
	{Start: "18:00", End: "22:00"},
}

func TestAnnotateSlots_EmptyDay(t *testing.T) {
	slots := annotateSlots(testCatalog, nil)

	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.True(t, slot.IsAvailable)
	}
	assert.Equal(t, "08:00", slots[0].StartTime.String())
	assert.Equal(t, "22:00", slots[2].EndTime.String())
}

func TestAnnotateSlots_ConfirmedBlocksItsSlotOnly(t *testing.T) {
	reservations := []*domain.Reservation{
		{StartTime: "12:00", EndTime: "18:00", Status: domain.StatusConfirmed},
	}

	slots := annotateSlots(testCatalog, reservations)

	require.Len(t, slots, 3)
	assert.True(t, slots[0].IsAvailable, "08:00-12:00 touches the reservation but does not overlap")
	assert.False(t, slots[1].IsAvailable)
	assert.True(t, slots[2].IsAvailable, "18:00-22:00 touches the reservation but does not overlap")
}

func TestAnnotateSlots_PendingBlocks(t *testing.T) {
	reservations := []*domain.Reservation{
		{StartTime: "08:00", EndTime: "12:00", Status: domain.StatusPending},
	}

	slots := annotateSlots(testCatalog, reservations)

	assert.False(t, slots[0].IsAvailable)
	assert.True(t, slots[1].IsAvailable)
}

func TestAnnotateSlots_WaitlistedDoesNotBlock(t *testing.T) {
	reservations := []*domain.Reservation{
		{StartTime: "12:00", EndTime: "18:00", Status: domain.StatusWaitlisted},
	}

	slots := annotateSlots(testCatalog, reservations)

	assert.True(t, slots[1].IsAvailable, "a waitlisted reservation is itself waiting for the slot")
}

func TestAnnotateSlots_CancelledDoesNotBlock(t *testing.T) {
	reservations := []*domain.Reservation{
		{StartTime: "12:00", EndTime: "18:00", Status: domain.StatusCancelled},
	}

	slots := annotateSlots(testCatalog, reservations)

	assert.True(t, slots[1].IsAvailable)
}

func TestAnnotateSlots_FullDay(t *testing.T) {
	reservations := []*domain.Reservation{
		{StartTime: "08:00", EndTime: "12:00", Status: domain.StatusConfirmed},
		{StartTime: "12:00", EndTime: "18:00", Status: domain.StatusPending},
		{StartTime: "18:00", EndTime: "22:00", Status: domain.StatusConfirmed},
	}

	slots := annotateSlots(testCatalog, reservations)

	for _, slot := range slots {
		assert.False(t, slot.IsAvailable)
	}
}

func TestAnnotateSlots_EmptyCatalog(t *testing.T) {
	slots := annotateSlots(nil, []*domain.Reservation{
		{StartTime: "08:00", EndTime: "12:00", Status: domain.StatusConfirmed},
	})

	assert.Empty(t, slots)
}
