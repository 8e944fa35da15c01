package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/msgfmt"
	"github.com/dmitrymomot/msgfmt/internal/api"
	"github.com/dmitrymomot/msgfmt/internal/config"
	"github.com/dmitrymomot/msgfmt/middlewares"
	"github.com/dmitrymomot/msgfmt/pkg/i18n"
	"github.com/dmitrymomot/msgfmt/pkg/logger"
	"github.com/dmitrymomot/msgfmt/pkg/patterncache"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Configuration is read from the environment: HTTP_ADDR, REDIS_URL,
MESSAGEPATTERN_APOSTROPHE_MODE, PATTERN_CACHE_MAX_ENTRIES, PATTERN_CACHE_TTL,
TRANSLATIONS_DIR, LOG_LEVEL, LOG_FORMAT, SENTRY_DSN, SHUTDOWN_TIMEOUT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log, err := logger.New(cfg.Log, middlewares.RequestIDExtractor())
			if err != nil {
				return err
			}

			return serve(cmd.Context(), cfg, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	return cmd
}

// server holds everything serve builds before the App is started.
type server struct {
	app     *msgfmt.App
	store   patterncache.Store
	runOpts []msgfmt.RunOption
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	srv, err := newServer(ctx, cfg, log)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "starting server",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("apostrophe_mode", cfg.Pattern.ApostropheMode.String()),
		slog.Bool("redis", cfg.Redis.URL != ""),
	)

	if err := srv.app.Run(cfg.HTTP.Addr, srv.runOpts...); err != nil {
		log.ErrorContext(ctx, "server stopped with error", slog.Any("error", err))
		return err
	}
	return nil
}

func newServer(ctx context.Context, cfg config.Config, log *slog.Logger) (*server, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		store  patterncache.Store
		health []msgfmt.HealthOption
		closer = func() error { return nil }
	)
	if cfg.Redis.URL != "" {
		client, err := patterncache.OpenRedis(ctx, cfg.Redis.URL,
			patterncache.WithPoolSize(cfg.Redis.PoolSize),
			patterncache.WithRetry(cfg.Redis.ConnectRetries, cfg.Redis.RetryInterval),
			patterncache.WithTimeouts(cfg.Redis.DialTimeout, cfg.Redis.ReadTimeout, cfg.Redis.WriteTimeout),
		)
		if err != nil {
			return nil, err
		}
		closer = client.Close
		store = patterncache.NewRedis(client,
			patterncache.WithPrefix(cfg.Redis.Prefix),
			patterncache.WithRedisDefaultTTL(cfg.Pattern.CacheTTL),
		)
		health = append(health, msgfmt.WithReadinessCheck("redis", patterncache.RedisHealthcheck(client)))
	} else {
		store = patterncache.NewMemory(
			patterncache.WithMaxEntries(cfg.Pattern.CacheMaxEntries),
			patterncache.WithDefaultTTL(cfg.Pattern.CacheTTL),
		)
	}

	compiler := patterncache.NewCompiler(store,
		patterncache.WithApostropheMode(cfg.Pattern.ApostropheMode),
		patterncache.WithLogger(log.With(slog.String("component", "patterncache"))),
	)

	catalogOpts := []i18n.Option{
		i18n.WithDefaultLanguage(cfg.I18n.DefaultLanguage),
		i18n.WithApostropheMode(cfg.Pattern.ApostropheMode),
		i18n.WithCompiler(compiler),
		i18n.WithLogger(log.With(slog.String("component", "i18n"))),
	}
	if cfg.I18n.Dir != "" {
		fsys := os.DirFS(cfg.I18n.Dir)
		catalogOpts = append(catalogOpts, i18n.WithJSONDir(fsys), i18n.WithYAMLDir(fsys))
	}
	catalog, err := i18n.New(catalogOpts...)
	if err != nil {
		_ = errors.Join(store.Close(), closer())
		return nil, fmt.Errorf("load translations: %w", err)
	}

	mw := []msgfmt.Middleware{
		middlewares.RequestID(),
		middlewares.RequestLogger(),
		middlewares.Recover(),
	}
	if len(cfg.HTTP.CORSOrigins) > 0 {
		mw = append(mw, middlewares.CORS(middlewares.WithAllowOrigins(cfg.HTTP.CORSOrigins...)))
	}
	mw = append(mw,
		middlewares.BodyLimit(cfg.HTTP.BodyLimit),
		middlewares.I18n(catalog, middlewares.WithI18nNamespace(cfg.I18n.Namespace)),
	)
	if cfg.HTTP.RequestTimeout > 0 {
		mw = append(mw, middlewares.Timeout(cfg.HTTP.RequestTimeout))
	}

	app := msgfmt.New(
		msgfmt.WithLogger(log, "http"),
		msgfmt.WithMiddleware(mw...),
		msgfmt.WithHandlers(
			api.NewPatternHandler(compiler, cfg.I18n.DefaultLanguage),
			api.NewTranslationHandler(catalog, cfg.I18n.Namespace),
		),
		msgfmt.WithErrorHandler(middlewares.ErrorHandler()),
		msgfmt.WithNotFoundHandler(middlewares.NotFound),
		msgfmt.WithMethodNotAllowedHandler(middlewares.MethodNotAllowed),
		msgfmt.WithHealthChecks(health...),
	)

	return &server{
		app:   app,
		store: store,
		runOpts: []msgfmt.RunOption{
			msgfmt.WithContext(ctx),
			msgfmt.ShutdownTimeout(cfg.ShutdownTimeout),
			msgfmt.ShutdownHook(func(context.Context) error {
				return errors.Join(store.Close(), closer())
			}),
		},
	}, nil
}
