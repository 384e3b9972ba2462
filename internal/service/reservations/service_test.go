package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/internal/infra/events"
	reservationStorage "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/reservation"
	"github.com/foyer-bassa/FB-ReservationService/internal/integrations/visioservice"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/reservations/models"
)

// Fakes

type fakeReservationRepo struct {
	byID          map[int64]*domain.Reservation
	cancelled     []int64
	cancelReason  string
	updatedStatus *domain.ReservationStatus
	interviewDone *bool
	visioLink     *string
}

func newFakeReservationRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	byID := make(map[int64]*domain.Reservation, len(reservations))
	for _, r := range reservations {
		byID[r.ID] = r
	}
	return &fakeReservationRepo{byID: byID}
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationStorage.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) GetByUserID(_ context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.byID {
		if r.UserID != userID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.byID {
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := f.byID[id]; !ok {
		return reservationStorage.ErrReservationNotFound
	}
	f.updatedStatus = &status
	f.byID[id].Status = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return reservationStorage.ErrReservationNotFound
	}
	f.cancelled = append(f.cancelled, id)
	f.cancelReason = reason
	f.byID[id].Status = domain.StatusCancelled
	return nil
}

func (f *fakeReservationRepo) SetVisioLink(_ context.Context, id int64, link string) error {
	f.visioLink = &link
	return nil
}

func (f *fakeReservationRepo) SetInterviewDone(_ context.Context, id int64, done bool) error {
	if _, ok := f.byID[id]; !ok {
		return reservationStorage.ErrReservationNotFound
	}
	f.interviewDone = &done
	return nil
}

type fakeVisioClient struct {
	calls int
}

func (f *fakeVisioClient) CreateMeetingWithGracefulDegradation(_ context.Context, _ visioservice.CreateMeetingRequest) (*visioservice.Meeting, error) {
	f.calls++
	return &visioservice.Meeting{ID: "m-9", JoinURL: "https://visio.example/m-9"}, nil
}

type fakePublisher struct {
	events []events.ReservationEvent
}

func (f *fakePublisher) Publish(_ context.Context, event events.ReservationEvent) error {
	f.events = append(f.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testReservation(id, userID int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		UserID:     userID,
		RoomID:     1,
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:  "08:00",
		EndTime:    "12:00",
		Status:     status,
		MemberType: domain.MemberStaff,
	}
}

func newService(repo *fakeReservationRepo) (*Service, *fakeVisioClient, *fakePublisher) {
	visio := &fakeVisioClient{}
	publisher := &fakePublisher{}
	return NewService(repo, visio, publisher, nopLogger{}), visio, publisher
}

// Tests

func TestGetByID_OwnerSeesOwn(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusConfirmed))
	svc, _, _ := newService(repo)

	resp, err := svc.GetByID(context.Background(), 1, 10, domain.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestGetByID_MemberCannotSeeOthers(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusConfirmed))
	svc, _, _ := newService(repo)

	_, err := svc.GetByID(context.Background(), 1, 20, domain.RoleMember)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_ManagerSeesEverything(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusConfirmed))
	svc, _, _ := newService(repo)

	_, err := svc.GetByID(context.Background(), 1, 20, domain.RoleManager)
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newService(newFakeReservationRepo())

	_, err := svc.GetByID(context.Background(), 404, 10, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_OwnerCancels(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusConfirmed))
	svc, _, publisher := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID:             10,
		Role:               domain.RoleMember,
		CancellationReason: "empêchement",
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, repo.cancelled)
	assert.Equal(t, "empêchement", repo.cancelReason)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.ReservationCancelled, publisher.events[0].Event)
	assert.Equal(t, string(domain.StatusCancelled), publisher.events[0].Status)
}

func TestCancel_MemberCannotCancelOthers(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusConfirmed))
	svc, _, _ := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 20, Role: domain.RoleMember})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusCancelled))
	svc, _, _ := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 10, Role: domain.RoleMember})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_WaitlistedCanBeCancelled(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusWaitlisted))
	svc, _, _ := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 10, Role: domain.RoleMember})
	assert.NoError(t, err)
}

func TestPromote_ManagerPromotesWaitlisted(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusWaitlisted))
	svc, visio, publisher := newService(repo)

	resp, err := svc.Promote(context.Background(), 1, &models.PromoteReservationRequest{UserID: 2, Role: domain.RoleManager})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	assert.Equal(t, 1, visio.calls, "promotion attaches a meeting link")
	require.NotNil(t, resp.VisioLink)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.ReservationPromoted, publisher.events[0].Event)
}

func TestPromote_MemberDenied(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusWaitlisted))
	svc, _, _ := newService(repo)

	_, err := svc.Promote(context.Background(), 1, &models.PromoteReservationRequest{UserID: 10, Role: domain.RoleMember})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestPromote_OnlyWaitlisted(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusConfirmed))
	svc, _, _ := newService(repo)

	_, err := svc.Promote(context.Background(), 1, &models.PromoteReservationRequest{UserID: 2, Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, ErrCannotPromote)
}

func TestMarkInterview(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 10, domain.StatusConfirmed))
	svc, _, _ := newService(repo)

	err := svc.MarkInterview(context.Background(), 1, &models.MarkInterviewRequest{UserID: 2, Role: domain.RoleManager, Done: true})
	require.NoError(t, err)
	require.NotNil(t, repo.interviewDone)
	assert.True(t, *repo.interviewDone)

	err = svc.MarkInterview(context.Background(), 1, &models.MarkInterviewRequest{UserID: 10, Role: domain.RoleMember, Done: true})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserReservations_AccessAndStatusFilter(t *testing.T) {
	repo := newFakeReservationRepo(
		testReservation(1, 10, domain.StatusConfirmed),
		testReservation(2, 10, domain.StatusCancelled),
	)
	svc, _, _ := newService(repo)

	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		TargetUserID: 10,
		RequesterID:  20,
		Role:         domain.RoleMember,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	status := "cancelled"
	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		TargetUserID: 10,
		RequesterID:  10,
		Role:         domain.RoleMember,
		Status:       &status,
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)

	bad := "approved"
	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		TargetUserID: 10,
		RequesterID:  10,
		Role:         domain.RoleMember,
		Status:       &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_ManagerOnly(t *testing.T) {
	repo := newFakeReservationRepo(
		testReservation(1, 10, domain.StatusConfirmed),
		testReservation(2, 11, domain.StatusCancelled),
	)
	svc, _, _ := newService(repo)

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{RequesterID: 10, Role: domain.RoleMember})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{RequesterID: 2, Role: domain.RoleManager})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1, "cancelled reservations are excluded by default")

	resp, err = svc.List(context.Background(), &models.ListReservationsRequest{
		RequesterID:     2,
		Role:            domain.RoleManager,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)
}
