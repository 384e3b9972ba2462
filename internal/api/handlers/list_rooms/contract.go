package list_rooms

import (
	"context"

	catalogService "github.com/foyer-bassa/FB-ReservationService/internal/service/catalog"
)

type CatalogService interface {
	ListRooms(ctx context.Context) (*catalogService.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
