package patterncache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

type entry struct {
	expiresAt time.Time // zero value = never expires
	pattern   *messagepattern.MessagePattern
	key       string
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-process pattern store with TTL expiration and optional
// LRU eviction when a maximum entry count is configured.
//
// The most recently used patterns are at the front of the eviction list.
type Memory struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *memoryOptions
	done     chan struct{}
	mu       sync.Mutex
	closed   bool
}

// NewMemory creates an in-memory store.
//
// Example:
//
//	store := patterncache.NewMemory(
//	    patterncache.WithMaxEntries(10000),
//	    patterncache.WithDefaultTTL(time.Hour),
//	)
//	defer store.Close()
func NewMemory(opts ...MemoryOption) *Memory {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
		done:     make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get returns the pattern stored under key and marks it as recently used.
func (m *Memory) Get(_ context.Context, key string) (*messagepattern.MessagePattern, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	elem, ok := m.items[key]
	if !ok {
		return nil, ErrNotFound
	}

	e := elem.Value.(*entry)
	if e.expired(time.Now()) {
		m.removeElement(elem)
		return nil, ErrNotFound
	}

	m.eviction.MoveToFront(elem)
	return e.pattern, nil
}

// Set stores a frozen pattern, evicting the least recently used entry when
// the store is full.
func (m *Memory) Set(_ context.Context, key string, mp *messagepattern.MessagePattern, ttl time.Duration) error {
	mp = frozen(mp)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if elem, ok := m.items[key]; ok {
		e := elem.Value.(*entry)
		e.pattern = mp
		e.expiresAt = expiresAt
		m.eviction.MoveToFront(elem)
		return nil
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.eviction.Back(); oldest != nil {
			m.removeElement(oldest)
		}
	}

	m.items[key] = m.eviction.PushFront(&entry{key: key, pattern: mp, expiresAt: expiresAt})
	return nil
}

// Delete removes a key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if elem, ok := m.items[key]; ok {
		m.removeElement(elem)
	}
	return nil
}

// Clear removes all entries.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.items = make(map[string]*list.Element)
	m.eviction.Init()
	return nil
}

// Len returns the number of entries, including expired ones not yet collected.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor goroutine. Close is idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	return nil
}

func (m *Memory) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for elem := m.eviction.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry).expired(now) {
			m.removeElement(elem)
		}
		elem = prev
	}
}

// removeElement must be called with the mutex held.
func (m *Memory) removeElement(elem *list.Element) {
	m.eviction.Remove(elem)
	delete(m.items, elem.Value.(*entry).key)
}

var _ Store = (*Memory)(nil)
