package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	paymentStorage "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/payment"
	reservationStorage "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/reservation"
)

type fakePaymentRepo struct {
	byID   map[int64]*domain.Payment
	nextID int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{byID: make(map[int64]*domain.Payment), nextID: 1}
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	created := *p
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.byID[created.ID] = &created
	f.nextID++
	return &created, nil
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, paymentStorage.ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakePaymentRepo) GetByReservationID(_ context.Context, reservationID int64) ([]*domain.Payment, error) {
	var result []*domain.Payment
	for _, p := range f.byID {
		if p.ReservationID == reservationID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) SetJustificatif(_ context.Context, id int64, url string) error {
	p, ok := f.byID[id]
	if !ok {
		return paymentStorage.ErrPaymentNotFound
	}
	p.JustificatifURL = &url
	return nil
}

type fakeReservationRepo struct {
	byID map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationStorage.ErrReservationNotFound
	}
	return r, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	payments     *fakePaymentRepo
	reservations *fakeReservationRepo
	svc          *Service
}

func newFixture() *fixture {
	f := &fixture{
		payments: newFakePaymentRepo(),
		reservations: &fakeReservationRepo{byID: map[int64]*domain.Reservation{
			100: {ID: 100, UserID: 10, Status: domain.StatusConfirmed},
		}},
	}
	f.svc = NewService(f.payments, f.reservations, nopLogger{})
	return f
}

func validCreate() *CreatePaymentRequest {
	return &CreatePaymentRequest{
		UserID:        2,
		Role:          domain.RoleManager,
		ReservationID: 100,
		Amount:        35000,
		PaidAt:        "2026-03-14",
		Method:        "cash",
	}
}

func TestCreate_RecordsPayment(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ReservationID)
	assert.Equal(t, float64(35000), resp.Amount)
	assert.Equal(t, "2026-03-14", resp.PaidAt)
	assert.Equal(t, "cash", resp.Method)
	assert.Nil(t, resp.JustificatifURL)
}

func TestCreate_MembersCannotRecordPayments(t *testing.T) {
	f := newFixture()

	req := validCreate()
	req.Role = domain.RoleMember

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, f.payments.byID)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name    string
		mutate  func(r *CreatePaymentRequest)
		wantErr error
	}{
		{"zero amount", func(r *CreatePaymentRequest) { r.Amount = 0 }, ErrInvalidInput},
		{"negative amount", func(r *CreatePaymentRequest) { r.Amount = -500 }, ErrInvalidInput},
		{"unknown method", func(r *CreatePaymentRequest) { r.Method = "crypto" }, ErrInvalidInput},
		{"malformed date", func(r *CreatePaymentRequest) { r.PaidAt = "14/03/2026" }, ErrInvalidInput},
		{"missing reservation", func(r *CreatePaymentRequest) { r.ReservationID = 404 }, ErrReservationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(req)
			_, err := f.svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAttachJustificatif(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	err = f.svc.AttachJustificatif(context.Background(), created.ID, &AttachJustificatifRequest{
		UserID: 2,
		Role:   domain.RoleAdmin,
		URL:    " https://docs.example/recu-17.pdf ",
	})
	require.NoError(t, err)

	stored := f.payments.byID[created.ID]
	require.NotNil(t, stored.JustificatifURL)
	assert.Equal(t, "https://docs.example/recu-17.pdf", *stored.JustificatifURL, "url is trimmed before storing")
}

func TestAttachJustificatif_Errors(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	err = f.svc.AttachJustificatif(context.Background(), created.ID, &AttachJustificatifRequest{UserID: 10, Role: domain.RoleMember, URL: "x"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = f.svc.AttachJustificatif(context.Background(), created.ID, &AttachJustificatifRequest{UserID: 2, Role: domain.RoleAdmin, URL: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = f.svc.AttachJustificatif(context.Background(), 404, &AttachJustificatifRequest{UserID: 2, Role: domain.RoleAdmin, URL: "x"})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestListByReservation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	// The reservation owner reads their own payments.
	owner, err := f.svc.ListByReservation(context.Background(), 100, 10, domain.RoleMember)
	require.NoError(t, err)
	assert.Len(t, owner.Payments, 1)

	// Another member is denied.
	_, err = f.svc.ListByReservation(context.Background(), 100, 11, domain.RoleMember)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// A manager reads anyone's.
	manager, err := f.svc.ListByReservation(context.Background(), 100, 2, domain.RoleManager)
	require.NoError(t, err)
	assert.Len(t, manager.Payments, 1)

	_, err = f.svc.ListByReservation(context.Background(), 404, 2, domain.RoleManager)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
