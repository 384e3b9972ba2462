package list_equipment

import (
	"context"

	catalogService "github.com/foyer-bassa/FB-ReservationService/internal/service/catalog"
)

type CatalogService interface {
	ListEquipment(ctx context.Context) (*catalogService.EquipmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
