package jwt_service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myflix/internal/adapters/services"
	"myflix/pkg/logger"
)

//nolint:gosec
const (
	msgNoErrorValidatingToken    = "should validate token without errors"
	msgInvalidTokenFormat        = "should return invalid token error for bad format"
	msgInvalidTokenReturnedError = "invalid token should return error"
	msgCorrectUsernameReturned   = "should return correct username"
	msgExpiredTokenReturnsError  = "expired token should return error"
)

func TestValidateToken(t *testing.T) {
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err, msgErrorCreatingTestLogger)

	ctx := context.Background()
	ctx = logger.NewContext(ctx, testLogger)

	t.Run("successful validation of a valid token", func(t *testing.T) {
		secretKey := "test-secret-key-12345"
		username := "moviefan"

		service := services.NewJWT(secretKey, 168*time.Hour)

		token, _, err := service.GenerateToken(ctx, username)
		require.NoError(t, err, msgNoErrorGeneratingToken)
		assert.NotEmpty(t, token, msgTokenNotEmpty)

		resultUsername, err := service.ValidateToken(ctx, token)
		require.NoError(t, err, msgNoErrorValidatingToken)
		assert.Equal(t, username, resultUsername, msgCorrectUsernameReturned)
	})

	t.Run("error on expired token", func(t *testing.T) {
		secretKey := "test-secret-key-12345"
		username := "moviefan"

		service := services.NewJWT(secretKey, -15*time.Minute)

		token, _, err := service.GenerateToken(ctx, username)
		require.NoError(t, err, msgNoErrorGeneratingToken)

		_, err = service.ValidateToken(ctx, token)
		require.Error(t, err, msgExpiredTokenReturnsError)
		assert.ErrorIs(t, err, services.ErrExpiredToken)
	})

	t.Run("error on invalid token format", func(t *testing.T) {
		service := services.NewJWT("test-secret-key-12345", 168*time.Hour)

		_, err := service.ValidateToken(ctx, "invalid.token.format")
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, services.ErrInvalidToken, msgInvalidTokenFormat)
	})

	t.Run("error on token with wrong signature", func(t *testing.T) {
		username := "moviefan"

		service1 := services.NewJWT("test-secret-key-12345", 168*time.Hour)
		service2 := services.NewJWT("different-secret-key-67890", 168*time.Hour)

		token, _, err := service1.GenerateToken(ctx, username)
		require.NoError(t, err, msgNoErrorGeneratingToken)

		_, err = service2.ValidateToken(ctx, token)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("error on token with empty username claim", func(t *testing.T) {
		secretKey := "test-secret-key-12345"

		claims := services.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, err := token.SignedString([]byte(secretKey))
		require.NoError(t, err)

		service := services.NewJWT(secretKey, 168*time.Hour)

		_, err = service.ValidateToken(ctx, tokenString)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("error on token signed with none algorithm", func(t *testing.T) {
		claims := services.Claims{
			Username: "moviefan",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		service := services.NewJWT("test-secret-key-12345", 168*time.Hour)

		_, err = service.ValidateToken(ctx, tokenString)
		require.Error(t, err, msgInvalidTokenReturnedError)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}
