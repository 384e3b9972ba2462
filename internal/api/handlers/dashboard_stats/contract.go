package dashboard_stats

import (
	"context"

	dashboardService "github.com/foyer-bassa/FB-ReservationService/internal/service/dashboard"
)

type DashboardService interface {
	Stats(ctx context.Context, req *dashboardService.StatsRequest) (*dashboardService.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
