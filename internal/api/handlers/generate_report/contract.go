package generate_report

import (
	"context"

	dashboardService "github.com/foyer-bassa/FB-ReservationService/internal/service/dashboard"
)

type DashboardService interface {
	GenerateReport(ctx context.Context, req *dashboardService.ReportRequest) (*dashboardService.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
