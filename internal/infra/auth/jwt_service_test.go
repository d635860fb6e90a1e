package auth

import (
	"testing"
	"time"

	"accounts/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"
	cfg.SecretKey.TokenTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(0))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	token, err := jwtService.Generate("64f1c0ffee0000000000abcd")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := jwtService.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(0))
	require.NoError(t, err)

	subject, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Empty(t, subject)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig(0))
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Token = "a_completely_different_secret_key_for_testing"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Generate("64f1c0ffee0000000000abcd")
	require.NoError(t, err)

	subject, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Empty(t, subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(-time.Minute))
	require.NoError(t, err)

	token, err := jwtService.Generate("64f1c0ffee0000000000abcd")
	require.NoError(t, err)

	subject, err := jwtService.Verify(token)
	assert.Error(t, err)
	assert.Empty(t, subject)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
