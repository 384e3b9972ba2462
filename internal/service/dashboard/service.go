package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/pkg/ptr"
)

// Service assembles the manager dashboard: reservation totals, occupancy,
// revenue and the member breakdown, plus report link generation.
type Service struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	userRepo        UserRepository
	roomRepo        RoomRepository
	slotsPerDay     int
	logger          Logger
}

// NewService creates the dashboard service. slotsPerDay is the size of
// the configured slot catalog.
func NewService(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	userRepo UserRepository,
	roomRepo RoomRepository,
	slotsPerDay int,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		userRepo:        userRepo,
		roomRepo:        roomRepo,
		slotsPerDay:     slotsPerDay,
		logger:          logger,
	}
}

// Stats computes the dashboard figures for a period. Admin and manager
// only.
func (s *Service) Stats(ctx context.Context, req *StatsRequest) (*StatsResponse, error) {
	s.logger.Info("Stats: computing dashboard for user=%d, period=%s to %s",
		req.UserID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if err := s.checkManagerAccess(req.Role, req.UserID, "Stats"); err != nil {
		return nil, err
	}

	if req.To.Before(req.From) {
		s.logger.Warn("Stats: invalid period for user=%d", req.UserID)
		return nil, fmt.Errorf("%w: period end before start", ErrInvalidInput)
	}

	from, to := req.From, req.To

	byStatus := make(map[string]int64)
	var total int64
	for _, status := range []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusWaitlisted,
		domain.StatusCancelled,
	} {
		count, err := s.reservationRepo.CountInPeriod(ctx, domain.ReservationsFilter{
			StartDate:       ptr.Ptr(from),
			EndDate:         ptr.Ptr(to),
			Status:          ptr.Ptr(status),
			IncludeInactive: true,
		})
		if err != nil {
			s.logger.Error("Stats: count error for status=%s: %v", status, err)
			return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
		}
		byStatus[string(status)] = count
		total += count
	}

	occupancy, err := s.occupancyRate(ctx, from, to, byStatus[string(domain.StatusConfirmed)])
	if err != nil {
		return nil, err
	}

	revenue, err := s.paymentRepo.SumInPeriod(ctx, from, to)
	if err != nil {
		s.logger.Error("Stats: revenue error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	memberCounts, err := s.userRepo.CountByMembership(ctx)
	if err != nil {
		s.logger.Error("Stats: membership breakdown error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}
	membersByStatus := make(map[string]int64, len(memberCounts))
	for membership, count := range memberCounts {
		membersByStatus[string(membership)] = count
	}

	s.logger.Info("Stats: successfully computed dashboard, total=%d", total)
	return &StatsResponse{
		From:              from.Format(domain.DateFormat),
		To:                to.Format(domain.DateFormat),
		TotalReservations: total,
		ByStatus:          byStatus,
		OccupancyRate:     occupancy,
		Revenue:           revenue,
		MembersByStatus:   membersByStatus,
	}, nil
}

// GenerateReport produces a download link for a dashboard export. Only
// the link is generated here; rendering is done by the reporting worker
// that watches the reports location.
func (s *Service) GenerateReport(ctx context.Context, req *ReportRequest) (*ReportResponse, error) {
	s.logger.Info("GenerateReport: format=%s by user=%d", req.Format, req.UserID)

	if err := s.checkManagerAccess(req.Role, req.UserID, "GenerateReport"); err != nil {
		return nil, err
	}

	var ext string
	switch req.Format {
	case "pdf":
		ext = "pdf"
	case "excel":
		ext = "xlsx"
	default:
		s.logger.Warn("GenerateReport: invalid format=%s", req.Format)
		return nil, fmt.Errorf("%w: format must be pdf or excel", ErrInvalidInput)
	}

	url := fmt.Sprintf("/reports/dashboard-%s.%s", uuid.NewString(), ext)

	s.logger.Info("GenerateReport: generated link %s", url)
	return &ReportResponse{URL: url}, nil
}

// occupancyRate divides confirmed reservations by the theoretical slot
// capacity of the period. Zero capacity yields zero, not a division error.
func (s *Service) occupancyRate(ctx context.Context, from, to time.Time, confirmed int64) (float64, error) {
	rooms, err := s.roomRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Stats: room count error: %v", err)
		return 0, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	days := int64(to.Sub(from).Hours()/24) + 1
	capacity := int64(s.slotsPerDay) * days * rooms
	if capacity <= 0 {
		return 0, nil
	}
	return float64(confirmed) / float64(capacity), nil
}

func (s *Service) checkManagerAccess(role domain.Role, userID int64, op string) error {
	if role != domain.RoleAdmin && role != domain.RoleManager {
		s.logger.Warn("%s: access denied for user=%d", op, userID)
		return ErrAccessDenied
	}
	return nil
}
