package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongo"
)

type Config struct {
	HTTP struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http"`

	Store struct {
		Backend Backend `mapstructure:"backend"`
	} `mapstructure:"store"`

	Postgres struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"postgres"`

	Mongo struct {
		URI      string `mapstructure:"uri"`
		Database string `mapstructure:"database"`
	} `mapstructure:"mongo"`

	Redis struct {
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
		LockTTL  time.Duration `mapstructure:"lock_ttl"`
	} `mapstructure:"redis"`

	Analytics struct {
		RefreshInterval time.Duration `mapstructure:"refresh_interval"`
		Timezone        string        `mapstructure:"timezone"`
	} `mapstructure:"analytics"`

	RateLimit struct {
		RPS   float64 `mapstructure:"rps"`
		Burst int     `mapstructure:"burst"`
	} `mapstructure:"ratelimit"`

	Log struct {
		Mode       string `mapstructure:"mode"`
		File       string `mapstructure:"file"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAgeDays int    `mapstructure:"max_age_days"`
	} `mapstructure:"log"`
}

// Location resolves the analytics timezone. Load has already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Analytics.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("store.backend", string(BackendMemory))
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "uniforms")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", 10*time.Minute)
	v.SetDefault("redis.lock_ttl", 30*time.Second)
	v.SetDefault("analytics.refresh_interval", time.Minute)
	v.SetDefault("analytics.timezone", "UTC")
	v.SetDefault("ratelimit.rps", 5.0)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("log.mode", "development")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 7)
}

// Load reads .env (if present), then config.yaml from the given paths (if present), then
// UNIFORM_* environment variables, in increasing priority.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("UNIFORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Postgres.DSN == "" {
		cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("postgres backend selected but postgres.dsn is empty")
		}
	case BackendMongo:
		if c.Mongo.URI == "" {
			return errors.New("mongo backend selected but mongo.uri is empty")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if _, err := time.LoadLocation(c.Analytics.Timezone); err != nil {
		return fmt.Errorf("invalid analytics.timezone: %w", err)
	}
	if c.Analytics.RefreshInterval <= 0 {
		return errors.New("analytics.refresh_interval must be positive")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("ratelimit.rps and ratelimit.burst must be positive")
	}
	return nil
}
