package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/logger"
)

type ctxKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with context extractor", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.New(logger.Config{Output: &buf}, requestID, nil)
		require.NoError(t, err)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.With("component", "test").InfoContext(ctx, "parsed", slog.Int("parts", 3))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "parsed", rec["msg"])
		assert.Equal(t, "req-1", rec["request_id"])
		assert.Equal(t, "test", rec["component"])
		assert.InDelta(t, 3, rec["parts"], 0)
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.New(logger.Config{Format: "TEXT", Output: &buf})
		require.NoError(t, err)

		log.Info("hello", slog.String("k", "v"))
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "k=v")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.New(logger.Config{Level: "warn", Output: &buf})
		require.NoError(t, err)

		log.Info("quiet")
		log.Warn("loud")
		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("invalid settings", func(t *testing.T) {
		t.Parallel()
		_, err := logger.New(logger.Config{Level: "chatty"})
		require.Error(t, err)
		_, err = logger.New(logger.Config{Format: "xml"})
		require.Error(t, err)
	})

	t.Run("invalid sentry DSN falls back to output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.New(logger.Config{
			Output: &buf,
			Sentry: logger.SentryConfig{DSN: "not a dsn"},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "failed to initialize Sentry")

		buf.Reset()
		log.Error("still logged")
		assert.Contains(t, buf.String(), "still logged")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("discarded", slog.String("k", strings.Repeat("x", 10)))
}

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }

func TestTee(t *testing.T) {
	t.Parallel()

	t.Run("writes to every enabled handler", func(t *testing.T) {
		t.Parallel()
		var debug, warn bytes.Buffer
		log := slog.New(logger.Tee(
			slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
			slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
		))

		log.With("pattern", "{0}").WithGroup("parse").Info("cached", slog.Int("parts", 3))
		log.Warn("store unavailable")

		assert.Contains(t, debug.String(), "msg=cached pattern={0} parse.parts=3")
		assert.Contains(t, debug.String(), "store unavailable")
		assert.NotContains(t, warn.String(), "cached")
		assert.Contains(t, warn.String(), "store unavailable")
	})

	t.Run("a failing handler does not block the others", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		errSentry := errors.New("sentry transport down")
		h := logger.Tee(
			failingHandler{Handler: slog.NewTextHandler(&buf, nil), err: errSentry},
			slog.NewTextHandler(&buf, nil),
		)

		rec := slog.NewRecord(time.Now(), slog.LevelError, "parse failed", 0)
		err := h.Handle(context.Background(), rec)
		require.ErrorIs(t, err, errSentry)
		assert.Contains(t, buf.String(), "parse failed")
	})

	t.Run("disabled when no handler accepts the level", func(t *testing.T) {
		t.Parallel()
		h := logger.Tee(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
		assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	})
}
