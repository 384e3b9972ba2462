package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := manager.Issue(&domain.User{ID: 42, Role: domain.RoleManager})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	userID, role, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, domain.RoleManager, role)
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue(&domain.User{ID: 1, Role: domain.RoleMember})
	require.NoError(t, err)

	_, _, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_ExpiredToken(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, _, err := manager.Issue(&domain.User{ID: 1, Role: domain.RoleMember})
	require.NoError(t, err)

	_, _, err = manager.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	_, _, err := manager.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_UnknownRole(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, _, err := manager.Issue(&domain.User{ID: 1, Role: "superuser"})
	require.NoError(t, err)

	_, _, err = manager.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
