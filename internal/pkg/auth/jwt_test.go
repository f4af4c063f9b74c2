package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	token, expiresIn, err := service.GenerateToken(42, "learner@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := service.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "learner@example.com", claims.Email)
	assert.Equal(t, "test", claims.Issuer)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	token, _, err := service.GenerateToken(42, "learner@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestJWTService(time.Hour).GenerateToken(42, "learner@example.com")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour, TokenIssuer: "test"})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsRejectsEmptyToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	_, err := service.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	raw, err := ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", raw)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
