package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tok, err := GenerateToken(17, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(17), claims.UserID)
}

func TestParseToken_Rejects(t *testing.T) {
	good, err := GenerateToken(17, "secret", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(17, "secret", -time.Minute)
	require.NoError(t, err)
	anonymous, err := GenerateToken(0, "secret", time.Hour)
	require.NoError(t, err)

	cases := map[string]struct {
		token  string
		secret string
	}{
		"wrong secret": {good, "other"},
		"expired":      {expired, "secret"},
		"no user":      {anonymous, "secret"},
		"garbage":      {"not.a.token", "secret"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tc.token, tc.secret)
			assert.Error(t, err)
		})
	}
}
