package patterncache

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

// MemoryOption configures the in-memory store.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	maxEntries      int
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		defaultTTL:      time.Hour,
		cleanupInterval: time.Minute,
	}
}

// WithDefaultTTL sets the expiration used when Set is called with a zero TTL.
// Default: 1 hour.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.defaultTTL = d
	}
}

// WithCleanupInterval sets how often expired entries are collected.
// Zero disables the janitor goroutine.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// WithMaxEntries bounds the store; the least recently used entry is evicted
// when the bound is reached. Zero means unlimited.
func WithMaxEntries(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.maxEntries = n
	}
}

// RedisOption configures the Redis store.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		prefix:     "msgfmt",
		defaultTTL: 24 * time.Hour,
	}
}

// WithPrefix sets the key namespace. Keys are stored as "{prefix}:{key}";
// an empty prefix stores bare keys.
// Default: "msgfmt".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}

// WithRedisDefaultTTL sets the expiration used when Set is called with a zero TTL.
// Default: 24 hours.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.defaultTTL = d
	}
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithApostropheMode sets the mode used by Compile.
// Default: messagepattern.DefaultApostropheMode.
func WithApostropheMode(mode messagepattern.ApostropheMode) CompilerOption {
	return func(c *Compiler) {
		c.mode = mode
	}
}

// WithTTL sets the TTL passed to the store for compiled patterns.
// Default: 0 (the store's default).
func WithTTL(d time.Duration) CompilerOption {
	return func(c *Compiler) {
		c.ttl = d
	}
}

// WithLogger sets the logger for cache hits, misses and store failures.
// Default: a no-op logger.
func WithLogger(l *slog.Logger) CompilerOption {
	return func(c *Compiler) {
		if l != nil {
			c.logger = l
		}
	}
}
