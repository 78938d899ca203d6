package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Abcd@1234")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Abcd@1234", hash)

	// Hashing is salted, so two hashes of the same password differ
	hash2, err := HashPassword("Abcd@1234")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Abcd@1234")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "Abcd@1234"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("not-a-hash", "Abcd@1234"))
}
