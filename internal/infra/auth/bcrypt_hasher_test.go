package auth

import (
	"testing"

	"supermall/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
}

func TestBcryptHasher_SaltedHashes(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	tests := []struct {
		name       string
		configured int
		want       int
	}{
		{"min cost", bcrypt.MinCost, bcrypt.MinCost},
		{"unset falls back to default", 0, bcrypt.DefaultCost},
		{"out of range falls back to default", 99, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Identity: &config.IdentityConfig{BcryptCost: tt.configured}}
			hasher := NewBcryptHasher(cfg)

			assert.Equal(t, tt.want, hasher.(*bcryptHasher).cost)
		})
	}

	hasher := NewBcryptHasher(&config.Config{Identity: &config.IdentityConfig{BcryptCost: bcrypt.MinCost}})
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.False(t, hasher.Check("secret1", "not-a-bcrypt-hash"))
}
