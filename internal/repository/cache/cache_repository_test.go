package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/map-annotator/internal/domain"
	"github.com/map-annotator/internal/repository/cache"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *cache.Redis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, cache.NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_GetSet(t *testing.T) {
	mr, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		val, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))

		val, err := repo.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), val)
		assert.Equal(t, time.Minute, mr.TTL("k"))
	})

	t.Run("expired value is a miss", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short", []byte("v"), time.Second))
		mr.FastForward(2 * time.Second)

		val, err := repo.Get(ctx, "short")
		require.NoError(t, err)
		assert.Nil(t, val)
	})
}

func TestCacheRepository_Suggestions(t *testing.T) {
	mr, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	resp := &domain.SuggestionResponse{
		Status: domain.ProviderStatusOK,
		Data:   []domain.Suggestion{{ID: "a", Description: "Ramen Shop, NYC"}},
	}

	require.NoError(t, repo.SetSuggestions(ctx, "suggest:ramen", resp, 10*time.Minute))

	got, err := repo.GetSuggestions(ctx, "suggest:ramen")
	require.NoError(t, err)
	assert.Equal(t, resp, got)

	t.Run("miss", func(t *testing.T) {
		got, err := repo.GetSuggestions(ctx, "suggest:nothing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		require.NoError(t, mr.Set("suggest:broken", "{not json"))

		got, err := repo.GetSuggestions(ctx, "suggest:broken")
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCacheRepository_ConnectionError(t *testing.T) {
	mr, r := newTestRedis(t)
	repo := cache.NewCacheRepository(r)
	mr.Close()

	_, err := repo.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache get error")
}
