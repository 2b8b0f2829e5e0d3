package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("secret", "alice", RoleEditor, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.Exp, 5*time.Second)

	claims, err := ParseAccessToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, RoleEditor, claims.Role)
}

func TestParseAccessTokenRejects(t *testing.T) {
	good, err := NewAccessToken("secret", "alice", RoleEditor, time.Hour)
	require.NoError(t, err)
	_, err = ParseAccessToken("other", good.Token)
	assert.Error(t, err, "wrong secret")

	expired, err := NewAccessToken("secret", "alice", RoleEditor, -time.Minute)
	require.NoError(t, err)
	_, err = ParseAccessToken("secret", expired.Token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice", "role": RoleEditor}).
		SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseAccessToken("secret", noExp)
	assert.Error(t, err, "missing exp")

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "alice", "role": RoleEditor, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseAccessToken("secret", hs512)
	assert.Error(t, err, "unexpected algorithm")

	_, err = NewAccessToken("", "alice", RoleEditor, time.Hour)
	assert.Error(t, err)
}
