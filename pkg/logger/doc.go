// Package logger builds the structured slog loggers used across msgfmt.
//
// New reads a Config (level, json or text format, output) and wraps the
// handler in a LogHandlerDecorator so request-scoped values found in the
// context, such as the request ID, appear on every record:
//
//	log, err := logger.New(logger.Config{Level: "debug", Format: "text"}, requestIDExtractor)
//	log.InfoContext(ctx, "pattern parsed", slog.Int("parts", mp.CountParts()))
//
// With Config.Sentry.DSN set, warnings and errors are also forwarded to
// Sentry through sentry-go's slog handler; errors become Sentry issues.
// An invalid DSN is reported once and logging continues without Sentry.
//
// Libraries that accept an optional logger default to NewNope.
package logger
