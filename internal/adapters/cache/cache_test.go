package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myflix/internal/adapters/cache"
	"myflix/internal/config"
	cachePorts "myflix/internal/ports/cache"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:           host,
		Port:           port,
		Password:       "",
		DB:             0,
		PoolSize:       10,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		DefaultTTL:     10 * time.Minute,
	}

	return s, cfg
}

func TestNewRedisCache_Success(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	require.NoError(t, err)
	require.NotNil(t, redisCache)

	_, ok := redisCache.(cachePorts.Cache)
	assert.True(t, ok, "should implement Cache interface")

	assert.NoError(t, redisCache.Close(), "should close without errors")
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	ctx := context.Background()

	cfg := &config.RedisConfig{
		Host:           "nonexistent.host",
		Port:           12345,
		ConnectTimeout: 100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	assert.Error(t, err)
	assert.Nil(t, redisCache)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	s, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, redisCache.Close())
	}()

	err = redisCache.Set(ctx, "movies:catalog", `[{"title":"Inception"}]`, time.Minute)
	require.NoError(t, err)

	value, err := redisCache.Get(ctx, "movies:catalog")
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Inception"}]`, value)

	// Истекший ключ читается как отсутствующий, без ошибки.
	s.FastForward(2 * time.Minute)

	value, err = redisCache.Get(ctx, "movies:catalog")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisCache_GetMissingKey(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, redisCache.Close())
	}()

	value, err := redisCache.Get(ctx, "no-such-key")

	require.NoError(t, err, "missing key should not be an error")
	assert.Empty(t, value)
}

func TestRedisCache_SetUsesDefaultTTL(t *testing.T) {
	s, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, redisCache.Close())
	}()

	err = redisCache.Set(ctx, "movies:catalog", "payload", 0)
	require.NoError(t, err)

	ttl := s.TTL("movies:catalog")
	assert.Equal(t, cfg.DefaultTTL, ttl, "zero ttl should fall back to the configured default")
}

func TestRedisCache_Delete(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, redisCache.Close())
	}()

	err = redisCache.Set(ctx, "movies:catalog", "payload", time.Minute)
	require.NoError(t, err)

	err = redisCache.Delete(ctx, "movies:catalog")
	require.NoError(t, err)

	value, err := redisCache.Get(ctx, "movies:catalog")
	require.NoError(t, err)
	assert.Empty(t, value)
}
