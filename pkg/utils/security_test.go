package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("senha-forte")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)

	assert.True(t, VerifyPassword("senha-forte", hash))
	assert.False(t, VerifyPassword("senha-errada", hash))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := SignSessionToken("s3cret", "brasileirao", "sid-123", time.Hour)
	require.NoError(t, err)

	sid, err := ParseSessionToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", sid)
}

func TestParseSessionTokenRejects(t *testing.T) {
	token, err := SignSessionToken("s3cret", "brasileirao", "sid-123", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken("other", token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := SignSessionToken("s3cret", "brasileirao", "sid-123", -time.Minute)
	require.NoError(t, err)
	_, err = ParseSessionToken("s3cret", expired)
	assert.ErrorIs(t, err, ErrExpiredToken)

	_, err = ParseSessionToken("s3cret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
