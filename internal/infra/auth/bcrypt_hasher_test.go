package auth

import (
	"testing"

	"github.com/hatzenkracher/ipurchase/config"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	password := "korrekt-pferd-batterie"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("falsches-passwort", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Missing auth config falls back to bcrypt.DefaultCost.
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("passwort123")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("passwort123", hash))
}

func TestBcryptHasher_DifferentHashesForSamePassword(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash1, err := hasher.Hash("passwort123")
	assert.NoError(t, err)
	hash2, err := hasher.Hash("passwort123")
	assert.NoError(t, err)

	// Each hash carries its own salt.
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, hasher.Check("passwort123", hash1))
	assert.True(t, hasher.Check("passwort123", hash2))
}
