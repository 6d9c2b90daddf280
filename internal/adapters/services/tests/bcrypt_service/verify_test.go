package bcrypt_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myflix/internal/adapters/services"
)

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("successful verification of correct password", func(t *testing.T) {
		service := services.NewBcrypt(10)

		hash, err := service.Hash(ctx, "correct-password")
		require.NoError(t, err)

		ok, err := service.Verify(ctx, "correct-password", hash)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("mismatch is not an error", func(t *testing.T) {
		service := services.NewBcrypt(10)

		hash, err := service.Hash(ctx, "correct-password")
		require.NoError(t, err)

		ok, err := service.Verify(ctx, "wrong-password", hash)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("error on empty password", func(t *testing.T) {
		service := services.NewBcrypt(10)

		_, err := service.Verify(ctx, "", "some-hash")

		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("error on malformed hash", func(t *testing.T) {
		service := services.NewBcrypt(10)

		ok, err := service.Verify(ctx, "correct-password", "not-a-bcrypt-hash")

		assert.Error(t, err)
		assert.False(t, ok)
	})
}
