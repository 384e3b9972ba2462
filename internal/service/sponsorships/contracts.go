package sponsorships

import (
	"context"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// SponsorshipRepository is the sponsorship storage contract.
type SponsorshipRepository interface {
	Create(ctx context.Context, s *domain.Sponsorship) (*domain.Sponsorship, error)
	GetByID(ctx context.Context, id int64) (*domain.Sponsorship, error)
	List(ctx context.Context, sponsorID *int64) ([]*domain.Sponsorship, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SponsorshipStatus) error
}

// Logger writes structured service logs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
