package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3r-Secret")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3r-Secret", hash)

	assert.True(t, CheckPassword("Sup3r-Secret", hash))
	assert.False(t, CheckPassword("sup3r-secret", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", ""))
}
