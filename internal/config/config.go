package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers derived from the database URI scheme.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	DatabaseName    string
	RedisURL        string
	MenuCacheTTL    time.Duration
	CORSOrigins     []string
	LogLevel        string
	ShutdownTimeout time.Duration
	StoreTimeout    time.Duration
}

const (
	defaultRunAddress      = ":8000"
	defaultDatabaseName    = "bakery"
	defaultMenuCacheTTL    = time.Minute
	defaultCORSOrigins     = "*"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
	defaultStoreTimeout    = 5 * time.Second
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	runAddress := defaultRunAddress
	if port := getString(lookup, "PORT", ""); port != "" {
		runAddress = ":" + port
	}

	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", runAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", getString(lookup, "DATABASE_URL", "")),
		DatabaseName:    getString(lookup, "DATABASE_NAME", defaultDatabaseName),
		RedisURL:        getString(lookup, "REDIS_URL", ""),
		MenuCacheTTL:    getDuration(lookup, "MENU_CACHE_TTL", defaultMenuCacheTTL),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		StoreTimeout:    getDuration(lookup, "STORE_TIMEOUT", defaultStoreTimeout),
	}

	flags := flag.NewFlagSet("bakery", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		originsStr         = getString(lookup, "CORS_ORIGINS", defaultCORSOrigins)
		cacheTTLStr        = cfg.MenuCacheTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		storeTimeoutStr    = cfg.StoreTimeout.String()
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL or MongoDB connection URI")
	flags.StringVar(&cfg.DatabaseName, "db-name", cfg.DatabaseName, "MongoDB database name")
	flags.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL for the menu cache")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&originsStr, "cors-origins", originsStr, "Comma separated list of allowed CORS origins")
	flags.StringVar(&cacheTTLStr, "menu-cache-ttl", cacheTTLStr, "Menu cache entry lifetime")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&storeTimeoutStr, "store-timeout", storeTimeoutStr, "Store connect and ping timeout")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.MenuCacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return nil, fmt.Errorf("invalid menu cache ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.StoreTimeout, err = time.ParseDuration(storeTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid store timeout: %w", err)
	}

	cfg.CORSOrigins = splitList(originsStr)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{defaultCORSOrigins}
	}

	if cfg.MenuCacheTTL <= 0 {
		cfg.MenuCacheTTL = defaultMenuCacheTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = defaultDatabaseName
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if _, err := cfg.StorageDriver(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// StorageDriver resolves the storage backend from the database URI scheme.
func (c *Config) StorageDriver() (string, error) {
	scheme, _, ok := strings.Cut(c.DatabaseURI, "://")
	if !ok {
		return "", fmt.Errorf("database URI must include a scheme")
	}
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	default:
		return "", fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
