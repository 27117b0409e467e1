package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", digest)

	ok, err := hasher.Verify("correct horse battery staple", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyWrongPassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("p1")
	require.NoError(t, err)

	ok, err := hasher.Verify("p2", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashEmbedsRandomSalt(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	// Same plaintext, different digests, both verify.
	assert.NotEqual(t, first, second)

	ok, err := hasher.Verify("same password", first)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("same password", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyMalformedDigest(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	ok, err := hasher.Verify("anything", "not-a-bcrypt-digest")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestCostOutOfRangeFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(99)

	digest, err := hasher.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
