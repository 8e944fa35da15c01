package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// Config holds logger settings. Field tags are read by the env package.
type Config struct {
	// Level is the minimum level written to Output: debug, info, warn or error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format is json or text.
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	// Output defaults to os.Stdout.
	Output io.Writer

	Sentry SentryConfig
}

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level
}

// New creates a logger from cfg with optional context extractors.
// With a Sentry DSN, warnings and errors are also sent to Sentry; if the
// SDK cannot be initialized the failure is logged and only Output is used.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}

	if cfg.Sentry.DSN != "" {
		handler = withSentry(handler, cfg.Sentry)
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...)), nil
}

// NewNope returns a logger that drops every record. Packages with an
// optional logger start from it.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel parses a level name. An empty string yields slog.LevelInfo.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: %w", err)
	}
	return level, nil
}

func withSentry(handler slog.Handler, cfg SentryConfig) slog.Handler {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return handler
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel, // errors create issues
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return Tee(handler, sentryHandler)
}
