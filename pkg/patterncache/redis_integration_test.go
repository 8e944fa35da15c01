//go:build integration

package patterncache_test

import (
	"context"
	"math"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
	"github.com/dmitrymomot/msgfmt/pkg/patterncache"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	client, err := patterncache.OpenRedis(context.Background(), url, patterncache.WithRetry(1, time.Millisecond))
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestRedis_GetSet(t *testing.T) {
	t.Parallel()

	client := newTestRedisClient(t)
	s := patterncache.NewRedis(client, patterncache.WithPrefix("test-getset"))
	ctx := context.Background()
	t.Cleanup(func() { _ = s.Clear(ctx) })

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, patterncache.ErrNotFound)

	src := messagepattern.New()
	require.NoError(t, src.ParseChoiceStyle("-∞#low|0.5<mid|1#one"))
	require.NoError(t, s.Set(ctx, "choice", src, time.Minute))

	got, err := s.Get(ctx, "choice")
	require.NoError(t, err)
	assert.True(t, got.IsFrozen())
	assert.True(t, src.Equal(got))
	assert.True(t, math.IsInf(got.NumericValue(got.Part(0)), -1))
}

func TestRedis_Expiry(t *testing.T) {
	t.Parallel()

	client := newTestRedisClient(t)
	s := patterncache.NewRedis(client, patterncache.WithPrefix("test-expiry"))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "key", messagepattern.MustParse("{0}"), 50*time.Millisecond))
	time.Sleep(100 * time.Millisecond)

	_, err := s.Get(ctx, "key")
	require.ErrorIs(t, err, patterncache.ErrNotFound)
}

func TestRedis_CorruptEntry(t *testing.T) {
	t.Parallel()

	client := newTestRedisClient(t)
	s := patterncache.NewRedis(client, patterncache.WithPrefix("test-corrupt"))
	ctx := context.Background()
	t.Cleanup(func() { _ = s.Clear(ctx) })

	require.NoError(t, client.Set(ctx, "test-corrupt:key", `{"parts":[[0,0,0,0,-1]]}`, time.Minute).Err())

	_, err := s.Get(ctx, "key")
	require.ErrorIs(t, err, patterncache.ErrUnmarshal)
}

func TestRedis_ClearByPrefix(t *testing.T) {
	t.Parallel()

	client := newTestRedisClient(t)
	ctx := context.Background()
	a := patterncache.NewRedis(client, patterncache.WithPrefix("test-clear-a"))
	b := patterncache.NewRedis(client, patterncache.WithPrefix("test-clear-b"))
	t.Cleanup(func() { _ = b.Clear(ctx) })

	require.NoError(t, a.Set(ctx, "k", messagepattern.MustParse("a"), time.Minute))
	require.NoError(t, b.Set(ctx, "k", messagepattern.MustParse("b"), time.Minute))

	require.NoError(t, a.Clear(ctx))

	_, err := a.Get(ctx, "k")
	require.ErrorIs(t, err, patterncache.ErrNotFound)
	_, err = b.Get(ctx, "k")
	require.NoError(t, err)
}

func TestRedis_Compiler(t *testing.T) {
	t.Parallel()

	client := newTestRedisClient(t)
	s := patterncache.NewRedis(client, patterncache.WithPrefix("test-compiler"))
	ctx := context.Background()
	t.Cleanup(func() { _ = s.Clear(ctx) })

	first := patterncache.NewCompiler(s)
	second := patterncache.NewCompiler(s)

	a, err := first.Compile(ctx, patterncache.KindMessage, "{n,plural,offset:1 other{# more}}")
	require.NoError(t, err)
	b, err := second.Compile(ctx, patterncache.KindMessage, "{n,plural,offset:1 other{# more}}")
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "second compiler loads the parsed form")
}

func TestRedisHealthcheck(t *testing.T) {
	t.Parallel()

	check := patterncache.RedisHealthcheck(newTestRedisClient(t))
	require.NoError(t, check(context.Background()))

	require.ErrorIs(t, patterncache.RedisHealthcheck(nil)(context.Background()), patterncache.ErrHealthcheckFailed)
}
