package sponsorships

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	sponsorshipStorage "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/sponsorship"
)

type fakeSponsorshipRepo struct {
	byID   map[int64]*domain.Sponsorship
	nextID int64
}

func newFakeSponsorshipRepo() *fakeSponsorshipRepo {
	return &fakeSponsorshipRepo{byID: make(map[int64]*domain.Sponsorship), nextID: 1}
}

func (f *fakeSponsorshipRepo) Create(_ context.Context, s *domain.Sponsorship) (*domain.Sponsorship, error) {
	created := *s
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.byID[created.ID] = &created
	f.nextID++
	return &created, nil
}

func (f *fakeSponsorshipRepo) GetByID(_ context.Context, id int64) (*domain.Sponsorship, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, sponsorshipStorage.ErrSponsorshipNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSponsorshipRepo) List(_ context.Context, sponsorID *int64) ([]*domain.Sponsorship, error) {
	var result []*domain.Sponsorship
	for _, s := range f.byID {
		if sponsorID != nil && s.SponsorID != *sponsorID {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeSponsorshipRepo) UpdateStatus(_ context.Context, id int64, status domain.SponsorshipStatus) error {
	s, ok := f.byID[id]
	if !ok {
		return sponsorshipStorage.ErrSponsorshipNotFound
	}
	s.Status = status
	now := time.Now()
	s.ValidatedAt = &now
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_FilesPendingInvitation(t *testing.T) {
	svc := NewService(newFakeSponsorshipRepo(), nopLogger{})

	resp, err := svc.Create(context.Background(), &CreateSponsorshipRequest{
		SponsorID:    10,
		GuestName:    "  Paul Biyong  ",
		GuestContact: "paul@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Paul Biyong", resp.GuestName, "guest name is trimmed")
	assert.Equal(t, string(domain.SponsorshipPending), resp.Status)
	assert.Nil(t, resp.ValidatedAt)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeSponsorshipRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), &CreateSponsorshipRequest{SponsorID: 10, GuestName: " ", GuestContact: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &CreateSponsorshipRequest{
		SponsorID:    10,
		GuestName:    strings.Repeat("a", domain.MaxGuestNameLength+1),
		GuestContact: "x",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &CreateSponsorshipRequest{SponsorID: 10, GuestName: "Paul", GuestContact: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_MembersSeeOnlyTheirOwn(t *testing.T) {
	repo := newFakeSponsorshipRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &CreateSponsorshipRequest{SponsorID: 10, GuestName: "A", GuestContact: "a@x"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &CreateSponsorshipRequest{SponsorID: 20, GuestName: "B", GuestContact: "b@x"})
	require.NoError(t, err)

	own, err := svc.List(context.Background(), 10, domain.RoleMember)
	require.NoError(t, err)
	assert.Len(t, own.Sponsorships, 1)

	all, err := svc.List(context.Background(), 99, domain.RoleManager)
	require.NoError(t, err)
	assert.Len(t, all.Sponsorships, 2)
}

func TestDecide_ManagerApproves(t *testing.T) {
	repo := newFakeSponsorshipRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &CreateSponsorshipRequest{SponsorID: 10, GuestName: "Paul", GuestContact: "p@x"})
	require.NoError(t, err)

	resp, err := svc.Decide(context.Background(), created.ID, &DecideSponsorshipRequest{
		UserID: 2,
		Role:   domain.RoleManager,
		Status: "approved",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.SponsorshipApproved), resp.Status)
	assert.NotNil(t, resp.ValidatedAt)
}

func TestDecide_AccessAndValidation(t *testing.T) {
	repo := newFakeSponsorshipRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &CreateSponsorshipRequest{SponsorID: 10, GuestName: "Paul", GuestContact: "p@x"})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), created.ID, &DecideSponsorshipRequest{UserID: 10, Role: domain.RoleMember, Status: "approved"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Decide(context.Background(), created.ID, &DecideSponsorshipRequest{UserID: 2, Role: domain.RoleAdmin, Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidInput, "a decision cannot move back to pending")

	_, err = svc.Decide(context.Background(), 404, &DecideSponsorshipRequest{UserID: 2, Role: domain.RoleAdmin, Status: "approved"})
	assert.ErrorIs(t, err, ErrSponsorshipNotFound)
}

func TestDecide_IsFinal(t *testing.T) {
	repo := newFakeSponsorshipRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &CreateSponsorshipRequest{SponsorID: 10, GuestName: "Paul", GuestContact: "p@x"})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), created.ID, &DecideSponsorshipRequest{UserID: 2, Role: domain.RoleAdmin, Status: "rejected"})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), created.ID, &DecideSponsorshipRequest{UserID: 2, Role: domain.RoleAdmin, Status: "approved"})
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}
