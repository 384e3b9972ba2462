package create_sponsorship

import (
	"context"

	sponsorshipsService "github.com/foyer-bassa/FB-ReservationService/internal/service/sponsorships"
)

type SponsorshipsService interface {
	Create(ctx context.Context, req *sponsorshipsService.CreateSponsorshipRequest) (*sponsorshipsService.SponsorshipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
