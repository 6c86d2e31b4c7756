package auth

import (
	"strings"
	"testing"

	"classifieds/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"
	cfg.SecretKey.PasswordPepper = "test-pepper"

	return cfg
}

func TestPasswordHasher_HashAndCheck(t *testing.T) {
	hasher, err := NewPasswordHasher(newTestConfig())
	require.NoError(t, err)

	digest, err := hasher.Hash("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", digest)
	assert.True(t, hasher.Check("hunter2", digest))
	assert.False(t, hasher.Check("hunter3", digest))
}

func TestPasswordHasher_SaltsEachDigest(t *testing.T) {
	hasher, err := NewPasswordHasher(newTestConfig())
	require.NoError(t, err)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestPasswordHasher_PepperMatters(t *testing.T) {
	hasher, err := NewPasswordHasher(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.PasswordPepper = "another-pepper"
	other, err := NewPasswordHasher(otherCfg)
	require.NoError(t, err)

	digest, err := hasher.Hash("hunter2")
	require.NoError(t, err)

	assert.False(t, other.Check("hunter2", digest))
}

func TestPasswordHasher_LongPassword(t *testing.T) {
	hasher, err := NewPasswordHasher(newTestConfig())
	require.NoError(t, err)

	long := strings.Repeat("a", 200)
	digest, err := hasher.Hash(long)
	require.NoError(t, err)

	assert.True(t, hasher.Check(long, digest))
	assert.False(t, hasher.Check(long[:199]+"b", digest))
}

func TestPasswordHasher_Empty(t *testing.T) {
	hasher, err := NewPasswordHasher(newTestConfig())
	require.NoError(t, err)

	digest, err := hasher.Hash("")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.True(t, hasher.Check("", digest))
}

func TestNewPasswordHasher_InvalidConfig(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.PasswordPepper = ""
	_, err := NewPasswordHasher(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.Auth.BcryptCost = 99
	_, err = NewPasswordHasher(cfg)
	assert.Error(t, err)
}
