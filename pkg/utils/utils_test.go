package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, NewID())
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sekret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Sekret123", hash)

	assert.True(t, CheckPassword("Sekret123", hash))
	assert.False(t, CheckPassword("Wrong456", hash))
	assert.False(t, CheckPassword("Sekret123", "not-a-hash"))
}
