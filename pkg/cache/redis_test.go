package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestSetGet(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "greeting", "hello", time.Minute))

	value, err := client.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
}

func TestGet_MissingKey(t *testing.T) {
	client, _ := setupClient(t)

	_, err := client.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestDelete(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "doomed", "x", 0))
	require.NoError(t, client.Delete(ctx, "doomed"))

	exists, err := client.Exists(ctx, "doomed")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSet_Expiration(t *testing.T) {
	client, mr := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "ephemeral", "x", time.Second))

	mr.FastForward(2 * time.Second)

	_, err := client.Get(ctx, "ephemeral")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("not-a-redis-url")
	assert.Error(t, err)
}
