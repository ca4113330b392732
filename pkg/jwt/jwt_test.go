package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("celebrant-secret", "guest-secret", 15*time.Minute, 7*24*time.Hour, 30*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("celebrant-1", "anna@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "celebrant-1", claims.CelebrantID)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestGuestTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateGuestToken("access-1", "guest@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateGuestToken(token)
	require.NoError(t, err)
	assert.Equal(t, "access-1", claims.GuestAccessID)
	assert.Equal(t, "guest@example.com", claims.Email)
}

// The two channels sign with different secrets, so a token from one must
// never validate on the other.
func TestChannelSeparation(t *testing.T) {
	m := newTestManager()

	guestToken, err := m.GenerateGuestToken("access-1", "guest@example.com")
	require.NoError(t, err)
	accessToken, err := m.GenerateAccessToken("celebrant-1", "anna@example.com")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(guestToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateGuestToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Even under the same secret, the type claim keeps access and refresh
// tokens from standing in for one another.
func TestTypeClaimSeparation(t *testing.T) {
	m := newTestManager()

	refreshToken, err := m.GenerateRefreshToken("celebrant-1")
	require.NoError(t, err)
	accessToken, err := m.GenerateAccessToken("celebrant-1", "anna@example.com")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("celebrant-secret", "guest-secret", -time.Minute, -time.Minute, -time.Minute)

	token, err := m.GenerateAccessToken("celebrant-1", "anna@example.com")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestRefreshTokensAreDistinct(t *testing.T) {
	m := newTestManager()

	first, err := m.GenerateRefreshToken("celebrant-1")
	require.NoError(t, err)
	second, err := m.GenerateRefreshToken("celebrant-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGarbageRejected(t *testing.T) {
	m := newTestManager()

	_, err := m.ValidateAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateGuestToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
