package cache_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/hbomb79/Reel/internal/cache"
	"github.com/hbomb79/Reel/internal/testhelpers"
	"github.com/hbomb79/Reel/pkg/logger"
	"github.com/labstack/gommon/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.SetMinLoggingLevel(logger.VERBOSE.Level())
}

type payload struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

func Test_New_DisabledReturnsNoop(t *testing.T) {
	t.Parallel()

	c, err := cache.New(context.Background(), cache.Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, cache.Noop{}, c)

	var out payload
	assert.NoError(t, c.SetJSON(context.Background(), "key", payload{URL: "x"}, time.Minute))
	hit, err := c.GetJSON(context.Background(), "key", &out)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Delete(context.Background(), "key"))
}

func Test_New_UnreachableRedisDegrades(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := cache.New(ctx, cache.Config{Enabled: true, Address: "127.0.0.1:1"})
	require.NoError(t, err, "an unreachable cache must not prevent startup")
	require.NotNil(t, c)
	if closer, ok := c.(io.Closer); ok {
		t.Cleanup(func() { _ = closer.Close() })
	}

	opCtx, opCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer opCancel()

	var out payload
	hit, err := c.GetJSON(opCtx, "key", &out)
	assert.False(t, hit)
	assert.ErrorIs(t, err, cache.ErrCache)
}

func Test_NewRedisCache_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := cache.NewRedisCache(ctx, cache.Config{Enabled: true, Address: "127.0.0.1:1"})
	assert.ErrorIs(t, err, cache.ErrCache)
}

func Test_RedisCache_RoundTrip(t *testing.T) {
	t.Parallel()
	addr := testhelpers.SpawnRedis(t)

	ctx := context.Background()
	c, err := cache.NewRedisCache(ctx, cache.Config{Enabled: true, Address: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	key := "test:" + random.String(12)
	var out payload

	hit, err := c.GetJSON(ctx, key, &out)
	require.NoError(t, err)
	assert.False(t, hit, "expected a miss before the key is set")

	require.NoError(t, c.SetJSON(ctx, key, payload{URL: "https://example.com/a", ExpiresIn: 900}, time.Minute))
	hit, err = c.GetJSON(ctx, key, &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{URL: "https://example.com/a", ExpiresIn: 900}, out)

	require.NoError(t, c.Delete(ctx, key, "test:unrelated"))
	hit, err = c.GetJSON(ctx, key, &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func Test_RedisCache_Expiry(t *testing.T) {
	t.Parallel()
	addr := testhelpers.SpawnRedis(t)

	ctx := context.Background()
	c, err := cache.NewRedisCache(ctx, cache.Config{Enabled: true, Address: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	key := "test:" + random.String(12)
	require.NoError(t, c.SetJSON(ctx, key, payload{URL: "u"}, 100*time.Millisecond))

	assert.EventuallyWithT(t, func(ct *assert.CollectT) {
		var out payload
		hit, err := c.GetJSON(ctx, key, &out)
		assert.NoError(ct, err)
		assert.False(ct, hit)
	}, 5*time.Second, 50*time.Millisecond)
}
