package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatusPredicates(t *testing.T) {
	tests := []struct {
		status     ReservationStatus
		isActive   bool
		blocksSlot bool
		canCancel  bool
		canPromote bool
	}{
		{StatusPending, true, true, true, false},
		{StatusConfirmed, true, true, true, false},
		{StatusWaitlisted, true, false, true, true},
		{StatusCancelled, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}

			assert.Equal(t, tt.isActive, r.IsActive())
			assert.Equal(t, tt.blocksSlot, r.BlocksSlot())
			assert.Equal(t, tt.canCancel, r.CanBeCancelled())
			assert.Equal(t, tt.canPromote, r.CanBePromoted())
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusWaitlisted))
	assert.False(t, ValidStatus("approved"))
	assert.False(t, ValidStatus(""))
}
