package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"estate-service/internal/domain/principal"
)

func setupCache(t *testing.T) (PrincipalCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisPrincipalCache(client, 5*time.Minute, zaptest.NewLogger(t)), mr
}

func TestRedisPrincipalCache(t *testing.T) {
	ctx := context.Background()

	p := &principal.Principal{
		ID:       "64f1b2c3d4e5f60718293a4b",
		Name:     "Jane Vendor",
		Email:    "jane@example.com",
		Role:     principal.RoleVendor,
		Verified: true,
	}

	t.Run("Miss Returns Nil Nil", func(t *testing.T) {
		c, _ := setupCache(t)

		got, err := c.Get(ctx, "64f1b2c3d4e5f60718293a4b")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Set Then Get", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.Set(ctx, p))

		got, err := c.Get(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, p, got)
	})

	t.Run("Set Applies TTL", func(t *testing.T) {
		c, mr := setupCache(t)

		require.NoError(t, c.Set(ctx, p))

		mr.FastForward(6 * time.Minute)

		got, err := c.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete Invalidates", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.Set(ctx, p))
		require.NoError(t, c.Delete(ctx, p.ID))

		got, err := c.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete Missing Key Is Not An Error", func(t *testing.T) {
		c, _ := setupCache(t)
		assert.NoError(t, c.Delete(ctx, "never-cached"))
	})

	t.Run("Set Nil Principal Rejected", func(t *testing.T) {
		c, _ := setupCache(t)
		assert.Error(t, c.Set(ctx, nil))
	})
}
