package catalog

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// RoomRepository reads the room catalog.
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// EquipmentRepository reads the equipment catalog.
type EquipmentRepository interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
}

// Logger writes structured service logs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
