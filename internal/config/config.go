// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache backends.
const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
	CacheBackendNone   = "none"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Search   SearchConfig   `yaml:"search"`
	Cache    CacheConfig    `yaml:"cache"`
	Warm     WarmConfig     `yaml:"warm"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// SearchConfig defines the search index connection.
type SearchConfig struct {
	Addresses []string        `yaml:"addresses"`
	Username  string          `yaml:"username"`
	Password  string          `yaml:"password"`
	Index     string          `yaml:"index"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines search index rate limiting. A zero PerSecond
// disables the limiter.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// CacheConfig defines the result cache backend.
type CacheConfig struct {
	Backend string        `yaml:"backend"` // redis, memory, none
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
	Memory  MemoryConfig  `yaml:"memory"`
}

// RedisConfig defines Redis connection settings.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// MemoryConfig defines the in-process cache settings.
type MemoryConfig struct {
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// WarmConfig defines the cache warmer.
type WarmConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Interval   time.Duration `yaml:"interval"`
	Categories []int64       `yaml:"categories"`
}

// TracingConfig defines OpenTelemetry export.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applySearchDefaults(&cfg.Search)
	applyCacheDefaults(&cfg.Cache)
	applyWarmDefaults(&cfg.Warm)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applySearchDefaults(s *SearchConfig) {
	if len(s.Addresses) == 0 {
		s.Addresses = []string{"http://localhost:9200"}
	}
	if s.Index == "" {
		s.Index = "listings"
	}
	if s.Timeout == 0 {
		s.Timeout = 5 * time.Second
	}
	if s.RateLimit.PerSecond > 0 && s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 1
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.Backend == "" {
		c.Backend = CacheBackendMemory
	}
	if c.TTL == 0 {
		c.TTL = 300 * time.Second
	}
	if c.Memory.CleanupInterval == 0 {
		c.Memory.CleanupInterval = 10 * time.Minute
	}
}

func applyWarmDefaults(w *WarmConfig) {
	if w.Interval == 0 {
		w.Interval = 4 * time.Minute
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "listing-aggregator"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Search.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("search.rate_limit.per_second must not be negative"))
	}

	switch cfg.Cache.Backend {
	case CacheBackendRedis:
		if cfg.Cache.Redis.Address == "" {
			errs = append(
				errs,
				fmt.Errorf("cache.redis.address is required when backend is redis"),
			)
		}
	case CacheBackendMemory, CacheBackendNone:
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"cache.backend must be one of: redis, memory, none (got %q)",
				cfg.Cache.Backend,
			),
		)
	}
	if cfg.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("cache.ttl must not be negative"))
	}

	if cfg.Warm.Enabled && len(cfg.Warm.Categories) == 0 {
		errs = append(errs, fmt.Errorf("warm.categories is required when warm is enabled"))
	}
	if cfg.Warm.Interval < 0 {
		errs = append(errs, fmt.Errorf("warm.interval must not be negative"))
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, fmt.Errorf("tracing.endpoint is required when tracing is enabled"))
	}

	return errors.Join(errs...)
}
