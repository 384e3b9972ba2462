package dashboard

import (
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// StatsRequest scopes the dashboard to a period.
type StatsRequest struct {
	UserID int64       `json:"-"`
	Role   domain.Role `json:"-"`
	From   time.Time   `json:"-"`
	To     time.Time   `json:"-"`
}

// StatsResponse is the dashboard payload.
type StatsResponse struct {
	From string `json:"from"` // "2026-03-01"
	To   string `json:"to"`   // "2026-03-31"

	TotalReservations int64            `json:"totalReservations"`
	ByStatus          map[string]int64 `json:"byStatus"`

	// OccupancyRate is confirmed reservations over the theoretical slot
	// capacity of the period (catalog size x days x rooms), in [0, 1].
	OccupancyRate float64 `json:"occupancyRate"`

	Revenue float64 `json:"revenue"` // XAF

	MembersByStatus map[string]int64 `json:"membersByStatus"`
}

// ReportRequest asks for a downloadable dashboard export.
type ReportRequest struct {
	UserID int64       `json:"-"`
	Role   domain.Role `json:"-"`
	Format string      `json:"format"` // "pdf" or "excel"
}

// ReportResponse carries the generated download link.
type ReportResponse struct {
	URL string `json:"url"`
}
