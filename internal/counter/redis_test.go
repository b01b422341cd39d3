package counter

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redisClient connects to CLINICMAP_TEST_REDIS_ADDR, skipping when unset.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("CLINICMAP_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CLINICMAP_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisStore(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()
	key := "clinicmap:test:" + t.Name()
	require.NoError(t, client.Del(ctx, key).Err())
	t.Cleanup(func() { client.Del(context.Background(), key) })

	s := NewRedisStore(client, key)

	n, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = s.Incr(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	_, err := NewRedisStore(client, "k").Incr(context.Background())
	assert.Error(t, err)
}
