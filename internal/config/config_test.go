package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "")
		t.Setenv("PASSWORD_PEPPER", "")

		cfg, err := NewPasswordConfig()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.Empty(t, cfg.Pepper)
	})

	t.Run("cost out of range", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "4")

		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})

	t.Run("invalid cost", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "not-a-number")

		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestPasswordHashingWithPepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "pepper"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("secret123", hash))
	// Without the pepper the hash must not verify.
	assert.False(t, plain.VerifyPassword("secret123", hash))
}

func TestNewJWTConfig(t *testing.T) {
	t.Run("requires secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("defaults expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "")

		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("rejects zero expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")

		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}
