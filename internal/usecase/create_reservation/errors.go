package create_reservation

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist.
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrUserNotFound is returned when the reserving account does not exist.
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrEquipmentNotFound is returned when a selected equipment item is
	// not part of the catalog.
	ErrEquipmentNotFound = errors.New("create_reservation: equipment not found")

	// ErrInvalidTimeSlot is returned when the requested window does not
	// exactly match a catalog slot.
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrInvalidDate is returned when the reservation date is in the past.
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned on internal usecase errors.
	ErrInternal = errors.New("create_reservation: internal error")
)
