package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/internal/infra/events"
	roomStorage "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/room"
	userStorage "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/user"
	"github.com/foyer-bassa/FB-ReservationService/internal/integrations/visioservice"
)

// Fakes

type fakeReservationRepo struct {
	existing  []*domain.Reservation
	created   *domain.Reservation
	devisID   *int64
	visioLink *string
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	created := *r
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

func (f *fakeReservationRepo) SetDevisID(_ context.Context, _ int64, devisID int64) error {
	f.devisID = &devisID
	return nil
}

func (f *fakeReservationRepo) SetVisioLink(_ context.Context, _ int64, link string) error {
	f.visioLink = &link
	return nil
}

type fakeRoomRepo struct {
	err error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Room{ID: id, Name: "Grande salle", Capacity: 120}, nil
}

type fakeUserRepo struct {
	err error
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: id, Role: domain.RoleMember, Membership: domain.MemberContractor}, nil
}

type fakeEquipmentRepo struct {
	missing   map[int64]bool
	saved     []domain.EquipmentSelection
	saveCalls int
}

func (f *fakeEquipmentRepo) Exists(_ context.Context, id int64) (bool, error) {
	return !f.missing[id], nil
}

func (f *fakeEquipmentRepo) SaveSelections(_ context.Context, _ int64, selections []domain.EquipmentSelection) error {
	f.saveCalls++
	f.saved = selections
	return nil
}

type fakeDevisRepo struct {
	err     error
	created *domain.Devis
}

func (f *fakeDevisRepo) Create(_ context.Context, d *domain.Devis) (*domain.Devis, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *d
	created.ID = 7
	f.created = &created
	return &created, nil
}

type fakeVisioClient struct {
	err   error
	calls int
}

func (f *fakeVisioClient) CreateMeetingWithGracefulDegradation(_ context.Context, _ visioservice.CreateMeetingRequest) (*visioservice.Meeting, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &visioservice.Meeting{ID: "m-1", JoinURL: "https://visio.example/m-1"}, nil
}

type fakePublisher struct {
	events []events.ReservationEvent
}

func (f *fakePublisher) Publish(_ context.Context, event events.ReservationEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixture

type fixture struct {
	uc          *UseCase
	reservation *fakeReservationRepo
	room        *fakeRoomRepo
	user        *fakeUserRepo
	equipment   *fakeEquipmentRepo
	devis       *fakeDevisRepo
	visio       *fakeVisioClient
	publisher   *fakePublisher
}

func newFixture() *fixture {
	f := &fixture{
		reservation: &fakeReservationRepo{},
		room:        &fakeRoomRepo{},
		user:        &fakeUserRepo{},
		equipment:   &fakeEquipmentRepo{},
		devis:       &fakeDevisRepo{},
		visio:       &fakeVisioClient{},
		publisher:   &fakePublisher{},
	}

	catalog := []domain.TimeSlot{
		{Start: "08:00", End: "12:00"},
		{Start: "12:00", End: "18:00"},
		{Start: "18:00", End: "22:00"},
	}
	pricing := domain.Pricing{BaseFee: 30000, EquipmentUnitFee: 1000, CleaningFee: 5000}

	f.uc = NewUseCase(
		f.reservation,
		f.room,
		f.user,
		f.equipment,
		f.devis,
		f.visio,
		f.publisher,
		&fakeTxManager{},
		catalog,
		pricing,
		nopLogger{},
	)
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:    1,
		RoomID:    2,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "12:00",
		EndTime:   "18:00",
	}
}

// Tests

func TestExecute_ConfirmsFreeSlot(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.MemberContractor), resp.MemberType, "membership is snapshotted on the reservation")
	require.NotNil(t, resp.DevisID)
	assert.Equal(t, int64(7), *resp.DevisID)
	require.NotNil(t, resp.VisioLink)
	assert.Equal(t, "https://visio.example/m-1", *resp.VisioLink)
}

func TestExecute_WaitlistsOnConflict(t *testing.T) {
	f := newFixture()
	f.reservation.existing = []*domain.Reservation{
		{StartTime: "12:00", EndTime: "18:00", Status: domain.StatusConfirmed},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "a taken slot waitlists instead of rejecting")

	assert.Equal(t, string(domain.StatusWaitlisted), resp.Status)
	assert.Nil(t, resp.VisioLink)
	assert.Zero(t, f.visio.calls, "no meeting link for a waitlisted reservation")
}

func TestExecute_WaitlistsBehindWaitlisted(t *testing.T) {
	f := newFixture()
	f.reservation.existing = []*domain.Reservation{
		{StartTime: "12:00", EndTime: "18:00", Status: domain.StatusWaitlisted},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusWaitlisted), resp.Status)
}

func TestExecute_AdjacentSlotDoesNotConflict(t *testing.T) {
	f := newFixture()
	f.reservation.existing = []*domain.Reservation{
		{StartTime: "08:00", EndTime: "12:00", Status: domain.StatusConfirmed},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_RejectsNonCatalogWindow(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.StartTime = "13:00"
	req.EndTime = "14:00"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_RejectsPastDate(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RoomNotFound(t *testing.T) {
	f := newFixture()
	f.room.err = roomStorage.ErrRoomNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_UserNotFound(t *testing.T) {
	f := newFixture()
	f.user.err = userStorage.ErrUserNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_UnknownEquipmentRejected(t *testing.T) {
	f := newFixture()
	f.equipment.missing = map[int64]bool{99: true}
	req := validRequest()
	req.Equipment = []EquipmentSelection{{EquipmentID: 99, Quantity: 10}}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	assert.Nil(t, f.reservation.created, "nothing is persisted")
}

func TestExecute_DevisFailureTolerated(t *testing.T) {
	f := newFixture()
	f.devis.err = errors.New("db down")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "quote generation is best-effort")

	assert.Nil(t, resp.DevisID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_VisioDegradationTolerated(t *testing.T) {
	f := newFixture()
	f.visio.err = visioservice.ErrServiceDegraded

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Nil(t, resp.VisioLink)
}

func TestExecute_QuoteCoversEquipment(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Equipment = []EquipmentSelection{
		{EquipmentID: 1, Quantity: 100},
		{EquipmentID: 2, Quantity: 20},
	}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, f.devis.created)
	assert.Equal(t, float64(30000+120*1000+5000), f.devis.created.TotalAmount)
	assert.Equal(t, 1, f.equipment.saveCalls)
	assert.Len(t, f.equipment.saved, 2)
}

func TestExecute_PublishesCreatedEvent(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, f.publisher.events, 1)
	event := f.publisher.events[0]
	assert.Equal(t, events.ReservationCreated, event.Event)
	assert.Equal(t, int64(42), event.ReservationID)
	assert.Equal(t, "2026-03-14", event.Date)
}
