package bcrypt_service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myflix/internal/adapters/services"
)

func TestHash(t *testing.T) {
	ctx := context.Background()

	t.Run("successful password hashing", func(t *testing.T) {
		service := services.NewBcrypt(10)

		hash, err := service.Hash(ctx, "correct-password")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.True(t, strings.HasPrefix(hash, "$2a$"), "should produce a bcrypt hash")
		assert.NotEqual(t, "correct-password", hash)
	})

	t.Run("error on empty password", func(t *testing.T) {
		service := services.NewBcrypt(10)

		_, err := service.Hash(ctx, "")

		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("error on too short password", func(t *testing.T) {
		service := services.NewBcrypt(10)

		_, err := service.Hash(ctx, "short")

		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("invalid cost falls back to default", func(t *testing.T) {
		service := services.NewBcrypt(-1)

		hash, err := service.Hash(ctx, "correct-password")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
	})
}
