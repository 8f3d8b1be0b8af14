package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := JWTManager{Secret: []byte("secret"), Issuer: "propertyadded", TokenTTL: time.Hour}

	token, ttl, err := manager.IssueSessionToken("user-1", "admin")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	claims, err := manager.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "propertyadded", claims.Issuer)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	issuer := JWTManager{Secret: []byte("secret"), TokenTTL: time.Hour}
	other := JWTManager{Secret: []byte("different"), TokenTTL: time.Hour}

	token, _, err := issuer.IssueSessionToken("user-1", "user")
	require.NoError(t, err)

	_, err = other.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenExpired(t *testing.T) {
	manager := JWTManager{Secret: []byte("secret"), TokenTTL: -time.Minute}

	token, _, err := manager.IssueSessionToken("user-1", "user")
	require.NoError(t, err)

	_, err = manager.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	manager := JWTManager{Secret: []byte("secret")}
	_, err := manager.ParseSessionToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
