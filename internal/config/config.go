// Package config loads the msgfmt server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/msgfmt/pkg/logger"
	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete server configuration.
type Config struct {
	HTTP    HTTPConfig
	Pattern PatternConfig
	Redis   RedisConfig
	I18n    I18nConfig
	Log     logger.Config

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// HTTPConfig holds the HTTP server settings.
type HTTPConfig struct {
	Addr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	BodyLimit      int64         `env:"HTTP_BODY_LIMIT" envDefault:"1048576"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
	CORSOrigins    []string      `env:"HTTP_CORS_ORIGINS" envSeparator:","`
}

// PatternConfig holds the parser and pattern cache settings.
type PatternConfig struct {
	// ApostropheMode is used for every pattern that does not name a mode.
	ApostropheMode  messagepattern.ApostropheMode `env:"MESSAGEPATTERN_APOSTROPHE_MODE" envDefault:"DOUBLE_OPTIONAL"`
	CacheMaxEntries int                           `env:"PATTERN_CACHE_MAX_ENTRIES" envDefault:"10000"`
	CacheTTL        time.Duration                 `env:"PATTERN_CACHE_TTL" envDefault:"1h"`
}

// RedisConfig selects the Redis pattern store. An empty URL keeps patterns
// in process memory.
type RedisConfig struct {
	URL            string        `env:"REDIS_URL"`
	Prefix         string        `env:"PATTERN_CACHE_REDIS_PREFIX" envDefault:"msgfmt:pattern"`
	PoolSize       int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	ConnectRetries int           `env:"REDIS_CONNECT_RETRIES" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	DialTimeout    time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout    time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"1s"`
	WriteTimeout   time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"1s"`
}

// I18nConfig points the server at a translation catalog.
type I18nConfig struct {
	Dir             string `env:"TRANSLATIONS_DIR"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	Namespace       string `env:"TRANSLATIONS_NAMESPACE" envDefault:"app"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the configuration from environ instead of the process
// environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, fmt.Errorf("%w: HTTP_ADDR is empty", ErrInvalidConfig))
	}
	if c.HTTP.BodyLimit <= 0 {
		errs = append(errs, fmt.Errorf("%w: HTTP_BODY_LIMIT must be positive", ErrInvalidConfig))
	}
	if c.HTTP.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: HTTP_REQUEST_TIMEOUT must not be negative", ErrInvalidConfig))
	}
	if c.Pattern.CacheMaxEntries < 0 {
		errs = append(errs, fmt.Errorf("%w: PATTERN_CACHE_MAX_ENTRIES must not be negative", ErrInvalidConfig))
	}
	if c.Redis.PoolSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: REDIS_POOL_SIZE must be positive", ErrInvalidConfig))
	}
	if c.Redis.ConnectRetries <= 0 {
		errs = append(errs, fmt.Errorf("%w: REDIS_CONNECT_RETRIES must be positive", ErrInvalidConfig))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: LOG_LEVEL: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}
