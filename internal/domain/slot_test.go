package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foyer-bassa/FB-ReservationService/pkg/types"
)

func TestTimeSlotOverlaps(t *testing.T) {
	slot := TimeSlot{Start: "12:00", End: "18:00"}

	tests := []struct {
		name     string
		start    types.TimeString
		end      types.TimeString
		overlaps bool
	}{
		{"same window", "12:00", "18:00", true},
		{"contained", "13:00", "14:00", true},
		{"straddles start", "11:00", "13:00", true},
		{"straddles end", "17:00", "19:00", true},
		{"touches start", "08:00", "12:00", false},
		{"touches end", "18:00", "22:00", false},
		{"before", "08:00", "11:00", false},
		{"after", "19:00", "22:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, slot.Overlaps(tt.start, tt.end))
		})
	}
}

func TestTimeSlotMatches(t *testing.T) {
	slot := TimeSlot{Start: "08:00", End: "12:00"}

	assert.True(t, slot.Matches("08:00", "12:00"))
	assert.False(t, slot.Matches("08:00", "11:00"), "shorter window inside the slot is not a match")
	assert.False(t, slot.Matches("09:00", "12:00"))
}
