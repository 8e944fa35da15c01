package patterncache

import (
	"context"
	"time"

	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

// Store keeps frozen patterns by key.
//
// TTL semantics for Set:
//   - Positive duration: entry expires after this duration
//   - Zero: use the store's configured default TTL
//   - Negative: entry never expires
//
// Patterns returned by Get are always frozen and may be shared.
type Store interface {
	// Get returns the pattern stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (*messagepattern.MessagePattern, error)

	// Set stores a pattern. Unfrozen patterns are stored as frozen copies.
	Set(ctx context.Context, key string, mp *messagepattern.MessagePattern, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

// frozen returns mp itself when already frozen, otherwise a frozen copy,
// so the caller keeps ownership of its mutable instance.
func frozen(mp *messagepattern.MessagePattern) *messagepattern.MessagePattern {
	if mp.IsFrozen() {
		return mp
	}
	return mp.CloneAsThawed().Freeze()
}
