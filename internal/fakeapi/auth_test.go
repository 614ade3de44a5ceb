package fakeapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/creatorpilot/internal/client/session"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := []byte("k")
	tok, err := GenerateToken("user-1", true, false, secret, time.Minute)
	require.NoError(t, err)

	id, err := UserIDFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	roles, err := session.DeriveRoles(tok)
	require.NoError(t, err)
	assert.True(t, roles.IsAdmin)
	assert.False(t, roles.IsOwner)
}

func TestUserIDFromToken_Rejects(t *testing.T) {
	secret := []byte("k")

	expired, err := GenerateToken("u", false, false, secret, -time.Minute)
	require.NoError(t, err)
	_, err = UserIDFromToken(expired, secret)
	require.Error(t, err)

	other, err := GenerateToken("u", false, false, []byte("other"), time.Minute)
	require.NoError(t, err)
	_, err = UserIDFromToken(other, secret)
	require.Error(t, err)

	_, err = UserIDFromToken("garbage", secret)
	require.Error(t, err)
}
