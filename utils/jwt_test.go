package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("prov-123", "prov@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "prov-123", id)
}

func TestExtractIDFromToken_Invalid(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-token")
	assert.Error(t, err)

	token, err := GenerateToken("prov-123", "prov@example.com", time.Hour)
	require.NoError(t, err)
	_, err = ExtractIDFromToken(token + "tampered")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("prov-123", "prov@example.com", -time.Minute)
	require.NoError(t, err)
	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}
