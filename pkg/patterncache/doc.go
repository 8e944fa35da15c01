// Package patterncache implements the parse once, freeze, cache and share
// lifecycle for message patterns.
//
// A Compiler turns pattern strings into frozen *messagepattern.MessagePattern
// values and keeps them in a Store. Two stores are provided: Memory, an
// in-process LRU with TTL, and Redis, which keeps the parsed form in Redis so
// that several processes share the work.
//
// # Usage
//
//	store := patterncache.NewMemory(patterncache.WithMaxEntries(10000))
//	defer store.Close()
//
//	c := patterncache.NewCompiler(store, patterncache.WithLogger(log))
//	mp, err := c.Compile(ctx, patterncache.KindMessage, "Hello {name}")
//
// Patterns are keyed by apostrophe mode, kind and the SHA-256 of the pattern
// string, so the same text parsed under different modes never collides.
// Parse errors are not cached.
//
// # Redis
//
//	client, err := patterncache.OpenRedis(ctx, "redis://localhost:6379/0")
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	c := patterncache.NewCompiler(patterncache.NewRedis(client))
//
// RedisHealthcheck adapts the client to a readiness check.
//
// # TTL Semantics
//
// Set takes a TTL: positive values expire after the duration, zero uses the
// store default and negative values never expire.
package patterncache
