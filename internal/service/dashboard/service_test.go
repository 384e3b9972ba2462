package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

type fakeReservationRepo struct {
	counts map[domain.ReservationStatus]int64
}

func (f *fakeReservationRepo) CountInPeriod(_ context.Context, filter domain.ReservationsFilter) (int64, error) {
	if filter.Status == nil {
		return 0, nil
	}
	return f.counts[*filter.Status], nil
}

type fakePaymentRepo struct {
	revenue float64
}

func (f *fakePaymentRepo) SumInPeriod(_ context.Context, _, _ time.Time) (float64, error) {
	return f.revenue, nil
}

type fakeUserRepo struct {
	byMembership map[domain.MembershipStatus]int64
}

func (f *fakeUserRepo) CountByMembership(_ context.Context) (map[domain.MembershipStatus]int64, error) {
	return f.byMembership, nil
}

type fakeRoomRepo struct {
	rooms int64
}

func (f *fakeRoomRepo) Count(_ context.Context) (int64, error) {
	return f.rooms, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(counts map[domain.ReservationStatus]int64, revenue float64, rooms int64) *Service {
	return NewService(
		&fakeReservationRepo{counts: counts},
		&fakePaymentRepo{revenue: revenue},
		&fakeUserRepo{byMembership: map[domain.MembershipStatus]int64{
			domain.MemberStaff:      12,
			domain.MemberContractor: 3,
		}},
		&fakeRoomRepo{rooms: rooms},
		3,
		nopLogger{},
	)
}

func statsRequest(role domain.Role) *StatsRequest {
	return &StatsRequest{
		UserID: 1,
		Role:   role,
		From:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestStats_ComputesFigures(t *testing.T) {
	svc := newTestService(map[domain.ReservationStatus]int64{
		domain.StatusConfirmed:  30,
		domain.StatusPending:    5,
		domain.StatusWaitlisted: 4,
		domain.StatusCancelled:  1,
	}, 450000, 2)

	resp, err := svc.Stats(context.Background(), statsRequest(domain.RoleManager))
	require.NoError(t, err)

	assert.Equal(t, int64(40), resp.TotalReservations)
	assert.Equal(t, int64(30), resp.ByStatus["confirmed"])
	assert.Equal(t, float64(450000), resp.Revenue)
	assert.Equal(t, int64(12), resp.MembersByStatus["staff"])

	// 3 slots x 10 days x 2 rooms = 60 bookable windows.
	assert.InDelta(t, 0.5, resp.OccupancyRate, 1e-9)
}

func TestStats_ZeroCapacity(t *testing.T) {
	svc := newTestService(map[domain.ReservationStatus]int64{domain.StatusConfirmed: 10}, 0, 0)

	resp, err := svc.Stats(context.Background(), statsRequest(domain.RoleAdmin))
	require.NoError(t, err)
	assert.Zero(t, resp.OccupancyRate, "no rooms means no occupancy, not a division error")
}

func TestStats_AccessAndPeriodValidation(t *testing.T) {
	svc := newTestService(nil, 0, 1)

	_, err := svc.Stats(context.Background(), statsRequest(domain.RoleMember))
	assert.ErrorIs(t, err, ErrAccessDenied)

	req := statsRequest(domain.RoleManager)
	req.From, req.To = req.To, req.From
	_, err = svc.Stats(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateReport(t *testing.T) {
	svc := newTestService(nil, 0, 1)

	pdf, err := svc.GenerateReport(context.Background(), &ReportRequest{UserID: 1, Role: domain.RoleManager, Format: "pdf"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pdf.URL, "/reports/dashboard-"))
	assert.True(t, strings.HasSuffix(pdf.URL, ".pdf"))

	excel, err := svc.GenerateReport(context.Background(), &ReportRequest{UserID: 1, Role: domain.RoleAdmin, Format: "excel"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(excel.URL, ".xlsx"))
	assert.NotEqual(t, pdf.URL, excel.URL)

	_, err = svc.GenerateReport(context.Background(), &ReportRequest{UserID: 1, Role: domain.RoleAdmin, Format: "csv"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GenerateReport(context.Background(), &ReportRequest{UserID: 9, Role: domain.RoleGuest, Format: "pdf"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
