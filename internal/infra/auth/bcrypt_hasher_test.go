package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"happyshop/config"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "longenough"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashProducesDistinctDigests(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "same-plaintext"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Random per-call salt: two digests differ but both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_CheckFailsClosed(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "longenough"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("longenough")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	// Hashing still works; the cost falls back to the default rather than
	// erroring at construction time.
	hash, err := hasher.Hash("longenough")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}
