package security_test

import (
	"testing"

	"health-wallet/config"
	"health-wallet/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := security.NewJWTService(&config.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenTTL: "1h",
	})

	token, err := svc.GenerateAccessToken("user1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "user1", claims.UserUUID)
	assert.Equal(t, "Health-Wallet", claims.Issuer)
}

func TestValidateToken_WrongKey(t *testing.T) {
	svc := security.NewJWTService(&config.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenTTL: "1h",
	})

	token, err := svc.GenerateAccessToken("user1")
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token, []byte("another-secret"))
	require.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := security.NewJWTService(&config.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenTTL: "1h",
	})

	_, err := svc.ValidateJWT("not-a-token", []byte("test-secret"))
	require.Error(t, err)
}

func TestGenerateToken_BadTTL(t *testing.T) {
	svc := security.NewJWTService(&config.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenTTL: "later",
	})

	_, err := svc.GenerateAccessToken("user1")
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := security.HashPassword("P@ssw0rd123")
	require.NoError(t, err)
	require.NotEqual(t, "P@ssw0rd123", hash)

	assert.True(t, security.CheckPassword("P@ssw0rd123", hash))
	assert.False(t, security.CheckPassword("wrong", hash))
}
