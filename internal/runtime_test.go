package internal_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/internal"
)

func TestApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("graceful shutdown runs hooks", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		var started, stopped atomic.Bool

		app := internal.New(internal.WithHealthChecks())
		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Run("127.0.0.1:0",
				internal.WithContext(ctx),
				internal.ShutdownTimeout(time.Second),
				internal.StartupHook(func(context.Context) error {
					started.Store(true)
					return nil
				}),
				internal.ShutdownHook(func(context.Context) error {
					stopped.Store(true)
					return nil
				}),
			)
		}()

		require.Eventually(t, started.Load, time.Second, 10*time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("server did not stop")
		}
		require.True(t, stopped.Load())
	})

	t.Run("failing startup hook aborts", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("cache unavailable")
		err := internal.New().Run("127.0.0.1:0",
			internal.StartupHook(func(context.Context) error { return boom }),
		)
		require.ErrorIs(t, err, boom)
	})

	t.Run("shutdown hook errors are joined", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		boom := errors.New("close failed")
		err := internal.New().Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.ShutdownHook(func(context.Context) error { return boom }),
		)
		require.ErrorIs(t, err, boom)
	})

	t.Run("listen error", func(t *testing.T) {
		t.Parallel()
		err := internal.New().Run("256.0.0.1:bad")
		require.Error(t, err)
	})
}
