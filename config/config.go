// Package config provides configuration management for the menu service.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage and cache driver names.
const (
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config holds the complete application configuration.
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Cache        CacheConfig
	Invalidation InvalidationConfig
	Log          LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	RateLimit       int           `env:"RATE_LIMIT" envDefault:"100"`
	RateWindow      time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:","`
	// APIKeys protect write routes; empty disables the check.
	APIKeys        []string      `env:"API_KEYS" envSeparator:","`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"5m"`
	SwaggerUser    string        `env:"SWAGGER_USER"`
	SwaggerPass    string        `env:"SWAGGER_PASS"`
}

// DatabaseConfig selects and configures the store of record.
type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER" envDefault:"postgres"`

	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"menu"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	// DSN overrides the individual connection parts when set.
	DSN      string `env:"DATABASE_URL"`
	MaxConns int32  `env:"DB_MAX_CONNS" envDefault:"25"`
	// AutoMigrate applies the embedded schema on startup.
	AutoMigrate bool `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	MongoURI      string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"menu"`

	CircuitBreakerFailureThreshold uint32        `env:"CIRCUIT_BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	CircuitBreakerHalfOpenRequests uint32        `env:"CIRCUIT_BREAKER_HALF_OPEN_REQUESTS" envDefault:"2"`
	CircuitBreakerTimeout          time.Duration `env:"CIRCUIT_BREAKER_TIMEOUT" envDefault:"30s"`
}

// PostgresDSN returns DSN, or builds a postgres:// URL from the parts.
func (d DatabaseConfig) PostgresDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// CacheConfig selects and configures the cache store.
type CacheConfig struct {
	Driver string        `env:"CACHE_DRIVER" envDefault:"redis"`
	TTL    time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	// FailOpen serves reads from the store of record when the cache is down.
	FailOpen bool `env:"CACHE_FAIL_OPEN" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	MemoryCapacity int `env:"CACHE_MEMORY_CAPACITY" envDefault:"10000"`
	MemoryShards   int `env:"CACHE_MEMORY_SHARDS" envDefault:"16"`
}

// InvalidationConfig sizes the background invalidator.
type InvalidationConfig struct {
	Workers        int           `env:"INVALIDATION_WORKERS" envDefault:"4"`
	QueueSize      int           `env:"INVALIDATION_QUEUE_SIZE" envDefault:"1024"`
	MaxRetries     uint64        `env:"INVALIDATION_MAX_RETRIES" envDefault:"5"`
	AttemptTimeout time.Duration `env:"INVALIDATION_TIMEOUT" envDefault:"5s"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads an optional .env file and parses the environment. Variables
// already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Server.CORSOrigins = trimAll(cfg.Server.CORSOrigins)
	cfg.Server.APIKeys = trimAll(cfg.Server.APIKeys)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown drivers and non-positive sizes.
func (c Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case DriverPostgres, DriverMongoDB:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMongoDB, c.Database.Driver))
	}
	switch c.Cache.Driver {
	case DriverRedis, DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("CACHE_DRIVER must be %q or %q, got %q", DriverRedis, DriverMemory, c.Cache.Driver))
	}
	if c.Cache.TTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be positive"))
	}
	if c.Invalidation.Workers <= 0 || c.Invalidation.QueueSize <= 0 {
		errs = append(errs, errors.New("INVALIDATION_WORKERS and INVALIDATION_QUEUE_SIZE must be positive"))
	}
	return errors.Join(errs...)
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
