package list_sponsorships

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	sponsorshipsService "github.com/foyer-bassa/FB-ReservationService/internal/service/sponsorships"
)

type SponsorshipsService interface {
	List(ctx context.Context, userID int64, role domain.Role) (*sponsorshipsService.SponsorshipListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
