package flags

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/pkg/cache"
)

func setupCache(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	return client, mr
}

func TestEmailModule_ConfiguredDefault(t *testing.T) {
	ctx := context.Background()

	assert.True(t, New(true, nil, nil).EmailModule(ctx))
	assert.False(t, New(false, nil, nil).EmailModule(ctx))
}

func TestEmailModule_RedisOverride(t *testing.T) {
	ctx := context.Background()
	client, mr := setupCache(t)

	flags := New(true, client, nil)

	t.Run("Success - no override falls back to config", func(t *testing.T) {
		assert.True(t, flags.EmailModule(ctx))
	})

	t.Run("Success - override disables module", func(t *testing.T) {
		mr.Set(emailModuleKey, "false")
		assert.False(t, flags.EmailModule(ctx))
	})

	t.Run("Success - override re-enables module", func(t *testing.T) {
		mr.Set(emailModuleKey, "true")
		assert.True(t, flags.EmailModule(ctx))
	})

	t.Run("Success - garbage override falls back to config", func(t *testing.T) {
		mr.Set(emailModuleKey, "maybe")
		assert.True(t, flags.EmailModule(ctx))
	})
}
