package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	userStorage "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/user"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/users/models"
)

type fakeUserRepo struct {
	byID       map[int64]*domain.User
	nextID     int64
	referenced map[int64]bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       make(map[int64]*domain.User),
		nextID:     1,
		referenced: make(map[int64]bool),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, userStorage.ErrDuplicateEmail
		}
	}
	created := *u
	created.ID = f.nextID
	f.byID[created.ID] = &created
	f.nextID++
	return &created, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, userStorage.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) List(_ context.Context, _ string) ([]*domain.User, error) {
	var result []*domain.User
	for _, u := range f.byID {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return userStorage.ErrUserNotFound
	}
	copied := *u
	f.byID[u.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return userStorage.ErrUserNotFound
	}
	if f.referenced[id] {
		return userStorage.ErrUserReferenced
	}
	delete(f.byID, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreate() *models.CreateUserRequest {
	return &models.CreateUserRequest{
		RequesterID: 1,
		Role:        domain.RoleAdmin,
		FirstName:   "Marie",
		LastName:    "Essomba",
		Email:       "marie@foyer-bassa.example",
		Phone:       "+237611111111",
		Password:    "motdepasse",
		UserRole:    "manager",
		Membership:  "staff",
	}
}

func TestCreate_ProvisionsElevatedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, bcrypt.MinCost, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, "manager", resp.Role, "admins can grant elevated roles")
	assert.Equal(t, "staff", resp.Membership)
	assert.NotEqual(t, "motdepasse", repo.byID[resp.ID].PasswordHash)
}

func TestCreate_AdminOnly(t *testing.T) {
	svc := NewService(newFakeUserRepo(), bcrypt.MinCost, nopLogger{})

	req := validCreate()
	req.Role = domain.RoleManager

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied, "managers cannot provision accounts")
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeUserRepo(), bcrypt.MinCost, nopLogger{})

	tests := []struct {
		name   string
		mutate func(r *models.CreateUserRequest)
	}{
		{"missing first name", func(r *models.CreateUserRequest) { r.FirstName = " " }},
		{"invalid email", func(r *models.CreateUserRequest) { r.Email = "pas-un-email" }},
		{"short password", func(r *models.CreateUserRequest) { r.Password = "court" }},
		{"unknown role", func(r *models.CreateUserRequest) { r.UserRole = "president" }},
		{"unknown membership", func(r *models.CreateUserRequest) { r.Membership = "honorary" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), bcrypt.MinCost, nopLogger{})

	_, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreate())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetByID_OwnProfileAllowed(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, bcrypt.MinCost, nopLogger{})

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	own, err := svc.GetByID(context.Background(), created.ID, created.ID, domain.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, created.Email, own.Email)

	_, err = svc.GetByID(context.Background(), created.ID, 999, domain.RoleMember)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 404, 1, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdate_RewritesProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, bcrypt.MinCost, nopLogger{})

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateUserRequest{
		RequesterID: 1,
		Role:        domain.RoleAdmin,
		FirstName:   "Marie-Claire",
		LastName:    "Essomba",
		Phone:       "+237622222222",
		UserRole:    "member",
		Membership:  "sponsored",
	})
	require.NoError(t, err)

	assert.Equal(t, "Marie-Claire", resp.FirstName)
	assert.Equal(t, "member", resp.Role)
	assert.Equal(t, "sponsored", resp.Membership)
	assert.Equal(t, created.Email, resp.Email, "email is not rewritable")
}

func TestDelete(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, bcrypt.MinCost, nopLogger{})

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, 1, domain.RoleManager)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), 404, 1, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = svc.Delete(context.Background(), created.ID, 1, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, repo.byID)
}

func TestDelete_KeepsAccountsWithReservations(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, bcrypt.MinCost, nopLogger{})

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	repo.referenced[created.ID] = true

	err = svc.Delete(context.Background(), created.ID, 1, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserInUse)
	assert.Len(t, repo.byID, 1)
}

func TestList_AdminOnly(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, bcrypt.MinCost, nopLogger{})

	_, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), &models.ListUsersRequest{RequesterID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, resp.Users, 1)

	_, err = svc.List(context.Background(), &models.ListUsersRequest{RequesterID: 5, Role: domain.RoleMember})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
