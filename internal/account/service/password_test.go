package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AnthoniusHendriyanto/account-service/internal/account/service"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := service.NewBcryptHasher(bcrypt.MinCost)

	passwords := []string{"pw1", "a longer password with spaces", "한글비밀번호", ""}

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)
		assert.True(t, hasher.Compare(password, hash))
	}
}

func TestBcryptHasher_SamePasswordDifferentHashes(t *testing.T) {
	hasher := service.NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("pw1")
	require.NoError(t, err)
	second, err := hasher.Hash("pw1")
	require.NoError(t, err)

	// Salted: hashes differ but both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Compare("pw1", first))
	assert.True(t, hasher.Compare("pw1", second))
}

func TestBcryptHasher_CompareRejectsWrongPassword(t *testing.T) {
	hasher := service.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)

	assert.False(t, hasher.Compare("wrong", hash))
	assert.False(t, hasher.Compare("pw1 ", hash))
	assert.False(t, hasher.Compare("pw1", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	hasher := service.NewBcryptHasher(99)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
