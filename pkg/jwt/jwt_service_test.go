package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateTokenUser("user-1", domain.RoleUser)
	require.NoError(t, err)

	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestTokenRejected(t *testing.T) {
	svc := NewJWTService("secret")
	token, err := svc.GenerateTokenUser("user-1", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = NewJWTService("other").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, _, err = svc.GetUserIDByToken("garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	expired := svc.(*jwtService)
	expired.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	old, err := expired.GenerateTokenUser("user-1", domain.RoleUser)
	require.NoError(t, err)
	expired.now = time.Now
	_, _, err = svc.GetUserIDByToken(old)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtUserClaim{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "PHARMA-PORTAL"},
	})
	signed, err := foreign.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, _, err = svc.GetUserIDByToken(signed)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
