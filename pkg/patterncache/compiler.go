package patterncache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/msgfmt/pkg/logger"
	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

// Kind selects the parse entry point for a pattern string.
type Kind uint8

const (
	// KindMessage is a full MessageFormat pattern.
	KindMessage Kind = iota
	// KindChoice is a standalone ChoiceFormat style.
	KindChoice
	// KindPlural is a standalone PluralFormat style.
	KindPlural
	// KindSelect is a standalone SelectFormat style.
	KindSelect
)

var kindNames = [...]string{
	KindMessage: "message",
	KindChoice:  "choice",
	KindPlural:  "plural",
	KindSelect:  "select",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind parses a kind name. An empty string yields KindMessage.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindMessage, nil
	}
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return KindMessage, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Parse parses pattern into a new MessagePattern using the entry point for k.
func (k Kind) Parse(pattern string, opts ...messagepattern.Option) (*messagepattern.MessagePattern, error) {
	mp := messagepattern.New(opts...)
	var err error
	switch k {
	case KindMessage:
		err = mp.Parse(pattern)
	case KindChoice:
		err = mp.ParseChoiceStyle(pattern)
	case KindPlural:
		err = mp.ParsePluralStyle(pattern)
	case KindSelect:
		err = mp.ParseSelectStyle(pattern)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	if err != nil {
		return nil, err
	}
	return mp, nil
}

// Key returns the store key for a pattern: "{mode}:{kind}:{sha256 hex}".
func Key(mode messagepattern.ApostropheMode, kind Kind, pattern string) string {
	sum := sha256.Sum256([]byte(pattern))
	return mode.String() + ":" + kind.String() + ":" + hex.EncodeToString(sum[:])
}

// Compiler parses patterns once, freezes them and keeps them in a Store.
// Concurrent misses for the same key share a single parse.
// Parse errors are returned to every waiting caller and never cached.
type Compiler struct {
	store  Store
	mode   messagepattern.ApostropheMode
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group
}

// NewCompiler creates a Compiler over store.
//
// Example:
//
//	c := patterncache.NewCompiler(patterncache.NewMemory(),
//	    patterncache.WithApostropheMode(messagepattern.DoubleOptional),
//	)
//	mp, err := c.Compile(ctx, patterncache.KindMessage, "{n,plural,one{# item}other{# items}}")
func NewCompiler(store Store, opts ...CompilerOption) *Compiler {
	c := &Compiler{
		store:  store,
		mode:   messagepattern.DefaultApostropheMode,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the apostrophe mode used by Compile.
func (c *Compiler) Mode() messagepattern.ApostropheMode {
	return c.mode
}

// Compile returns the frozen parse of pattern in the compiler's mode.
func (c *Compiler) Compile(ctx context.Context, kind Kind, pattern string) (*messagepattern.MessagePattern, error) {
	return c.CompileWithMode(ctx, c.mode, kind, pattern)
}

// CompileWithMode is like Compile with an explicit apostrophe mode.
// Store failures are logged and do not fail the call.
func (c *Compiler) CompileWithMode(ctx context.Context, mode messagepattern.ApostropheMode, kind Kind, pattern string) (*messagepattern.MessagePattern, error) {
	key := Key(mode, kind, pattern)

	mp, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		c.logger.DebugContext(ctx, "pattern cache hit", slog.String("key", key))
		return mp, nil
	case !errors.Is(err, ErrNotFound):
		c.logger.WarnContext(ctx, "pattern cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		mp, err := kind.Parse(pattern, messagepattern.WithApostropheMode(mode))
		if err != nil {
			return nil, err
		}
		mp.Freeze()
		if err := c.store.Set(ctx, key, mp, c.ttl); err != nil {
			c.logger.WarnContext(ctx, "pattern cache write failed", slog.String("key", key), slog.Any("error", err))
		}
		return mp, nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "pattern cache miss",
		slog.String("key", key),
		slog.Bool("shared", shared),
	)
	return v.(*messagepattern.MessagePattern), nil
}

// Invalidate removes the cached parse of pattern.
func (c *Compiler) Invalidate(ctx context.Context, mode messagepattern.ApostropheMode, kind Kind, pattern string) error {
	return c.store.Delete(ctx, Key(mode, kind, pattern))
}
