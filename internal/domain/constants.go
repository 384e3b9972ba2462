package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxGuestNameLength          = 200
	MaxCancellationReasonLength = 500
	MinPasswordLength           = 8
	MaxEquipmentSelectionQty    = 500
)

// BlockingStatuses are the statuses that make a slot show as unavailable
// on the calendar.
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses are excluded from conflict checks and from default
// listings.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}
