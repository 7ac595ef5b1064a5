package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordIsDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("secret1"), HashPassword("secret1"))
	assert.NotEqual(t, HashPassword("secret1"), HashPassword("secret2"))
}

func TestHashPasswordKnownDigest(t *testing.T) {
	// SHA-256("password"), fixed by the stored-record compatibility contract.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("secret1")

	assert.True(t, VerifyPassword("secret1", digest))
	assert.False(t, VerifyPassword("wrong12", digest))
	assert.False(t, VerifyPassword("secret1", "not-a-digest"))
	assert.False(t, VerifyPassword("", digest))
}
