package jwt

import (
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokedTokenBlocksUntilExpiry(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	token, _, err := svc.GenerateRefreshToken("EMP001")
	require.NoError(t, err)
	require.False(t, svc.IsTokenRevoked(token))

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	_, err = svc.ParseRefreshToken(token)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRevokeTokenSweepsExpiredEntries(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	// Same signing key, negative lifetime: a token whose expiry is
	// already an hour in the past.
	stale, _, err := NewJWTService("test-secret", "1h", "-1h").GenerateRefreshToken("EMP001")
	require.NoError(t, err)

	svc.RevokeToken(stale)
	require.True(t, svc.IsTokenRevoked(stale))

	live, _, err := svc.GenerateRefreshToken("EMP002")
	require.NoError(t, err)
	svc.RevokeToken(live)

	// The second revocation sweeps the expired entry; the token itself
	// still fails validation on its own expiry.
	assert.False(t, svc.IsTokenRevoked(stale))
	assert.True(t, svc.IsTokenRevoked(live))

	_, err = svc.ParseRefreshToken(stale)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestRevokeUnparsableTokenStillBlocks(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "24h")

	svc.RevokeToken("not-a-jwt")
	assert.True(t, svc.IsTokenRevoked("not-a-jwt"))
}
