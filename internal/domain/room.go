package domain

import "time"

// Room is reference data describing a bookable space at the Foyer Bassa.
// The core logic never mutates rooms.
type Room struct {
	ID        int64
	Name      string
	Capacity  int
	Location  string
	Amenities []string
	CreatedAt time.Time
}
