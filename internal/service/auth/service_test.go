package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	userStorage "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/user"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	created *domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, exists := f.byEmail[u.Email]; exists {
		return nil, userStorage.ErrDuplicateEmail
	}
	created := *u
	created.ID = int64(len(f.byEmail) + 1)
	f.byEmail[created.Email] = &created
	f.created = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userStorage.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeUserRepo) *Service {
	tokens := NewTokenManager("test-secret", time.Hour)
	return NewService(repo, tokens, bcrypt.MinCost, nopLogger{})
}

func validRegister() *RegisterRequest {
	return &RegisterRequest{
		FirstName: "Awa",
		LastName:  "Ndiaye",
		Email:     "awa@foyer-bassa.example",
		Phone:     "+237600000000",
		Password:  "motdepasse",
	}
}

func TestRegister_CreatesMemberAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "member", resp.User.Role, "self-registration never grants an elevated role")
	assert.Equal(t, "staff", resp.User.Membership, "membership defaults to staff")
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "motdepasse", repo.created.PasswordHash, "password is stored hashed")
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	req := validRegister()
	req.Email = "  Awa@Foyer-Bassa.Example "

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "awa@foyer-bassa.example", resp.User.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegister())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	tests := []struct {
		name   string
		mutate func(r *RegisterRequest)
	}{
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "  " }},
		{"missing last name", func(r *RegisterRequest) { r.LastName = "" }},
		{"invalid email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *RegisterRequest) { r.Password = "court" }},
		{"unknown membership", func(r *RegisterRequest) { r.Membership = "vip" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(req)
			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin_Succeeds(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "awa@foyer-bassa.example",
		Password: "motdepasse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "awa@foyer-bassa.example", resp.User.Email)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@foyer-bassa.example",
		Password: "motdepasse",
	})
	_, errWrong := svc.Login(context.Background(), &LoginRequest{
		Email:    "awa@foyer-bassa.example",
		Password: "mauvais-mdp",
	})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
}
