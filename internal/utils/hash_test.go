package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPStaysInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, otp, 6)
		require.GreaterOrEqual(t, otp, "100000")
		require.LessOrEqual(t, otp, "999999")
	}
}

func TestGenerateRandomTokenIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := GenerateRandomToken(32)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}

func TestHashTokenIsDeterministicAndOneWay(t *testing.T) {
	hash := HashToken("secret-value")
	assert.Equal(t, hash, HashToken("secret-value"))
	assert.NotEqual(t, hash, HashToken("secret-valuf"))
	assert.NotEqual(t, "secret-value", hash)
}
