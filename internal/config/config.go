package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store drivers
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	// Port falls back to the dev server default when PORT is unset.
	Port string `env:"PORT" envDefault:"5173"`
	// Host defaults to every interface.
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Store StoreConfig

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	StaticDir string `env:"STATIC_DIR" envDefault:"static"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	OTelEndpoint   string `env:"OTEL_ENDPOINT"`
}

// StoreConfig selects and configures the key-value store backend
type StoreConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"file"`
	// Key is where the serialized project collection lives.
	Key      string `env:"STORE_KEY" envDefault:"projects"`
	DataPath string `env:"DATA_PATH" envDefault:"data"`
	// Watch reloads the file backend when data files change.
	Watch bool `env:"WATCH" envDefault:"true"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/portfolio.db"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"portfolio:"`
}

// Load reads configuration from the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from the given variables only
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Addr is the listen address built from Host and Port
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Validate checks values env parsing cannot
func (c *Config) Validate() error {
	port, err := strconv.Atoi(strings.TrimSpace(c.Port))
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	switch c.Store.Driver {
	case DriverMemory, DriverFile, DriverSQLite, DriverRedis:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.Store.Key) == "" {
		return fmt.Errorf("store key is required")
	}
	return nil
}
