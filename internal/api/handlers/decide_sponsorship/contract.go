package decide_sponsorship

import (
	"context"

	sponsorshipsService "github.com/foyer-bassa/FB-ReservationService/internal/service/sponsorships"
)

type SponsorshipsService interface {
	Decide(ctx context.Context, sponsorshipID int64, req *sponsorshipsService.DecideSponsorshipRequest) (*sponsorshipsService.SponsorshipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
