package patterncache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

// Redis is a pattern store backed by Redis. Patterns are stored in their
// parsed JSON form, so a hit never re-parses the pattern string.
type Redis struct {
	client redis.UniversalClient
	opts   *redisOptions
}

// NewRedis creates a Redis-backed store. The client lifecycle belongs to the
// caller; see OpenRedis.
//
// Example:
//
//	client, err := patterncache.OpenRedis(ctx, os.Getenv("REDIS_URL"))
//	if err != nil {
//	    return err
//	}
//	store := patterncache.NewRedis(client, patterncache.WithPrefix("msgfmt"))
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Redis{client: client, opts: o}
}

// Get loads and decodes a pattern. The result is frozen.
func (r *Redis) Get(ctx context.Context, key string) (*messagepattern.MessagePattern, error) {
	data, err := r.client.Get(ctx, r.prefixedKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	mp := messagepattern.New()
	if err := json.Unmarshal(data, mp); err != nil {
		return nil, errors.Join(ErrUnmarshal, err)
	}
	return mp.Freeze(), nil
}

// Set encodes and stores a pattern.
// A negative TTL stores the key without expiration.
func (r *Redis) Set(ctx context.Context, key string, mp *messagepattern.MessagePattern, ttl time.Duration) error {
	data, err := json.Marshal(mp)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}

	if ttl == 0 {
		ttl = r.opts.defaultTTL
	}
	// Redis treats 0 as no expiration.
	return r.client.Set(ctx, r.prefixedKey(key), data, max(ttl, 0)).Err()
}

// Delete removes a key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefixedKey(key)).Err()
}

// Clear removes all keys under the configured prefix using SCAN, or the whole
// database when no prefix is set.
func (r *Redis) Clear(ctx context.Context) error {
	if r.opts.prefix == "" {
		return r.client.FlushDB(ctx).Err()
	}

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.opts.prefix+":*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close is a no-op; the client is closed by its owner.
func (r *Redis) Close() error {
	return nil
}

func (r *Redis) prefixedKey(key string) string {
	if r.opts.prefix == "" {
		return key
	}
	return r.opts.prefix + ":" + key
}

var _ Store = (*Redis)(nil)
