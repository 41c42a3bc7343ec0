package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session backends.
const (
	SessionsNone   = "none"
	SessionsMemory = "memory"
	SessionsRedis  = "redis"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	DSN      string
	Catalog  CatalogConfig
	Sessions SessionsConfig
	Redis    RedisConfig
}

type CatalogConfig struct {
	DefaultLimit int
	MaxLimit     int
}

type SessionsConfig struct {
	Backend string
	TTL     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.dsn", "catalog.db")
	v.SetDefault("catalog.default_limit", 12)
	v.SetDefault("catalog.max_limit", 100)
	v.SetDefault("auth.sessions.backend", SessionsNone)
	v.SetDefault("auth.sessions.ttl", "24h")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
}

// Load reads configs/config.yml (optional) and the environment. Any key can be
// overridden as APP_<KEY> with dots replaced by underscores; DATABASE_URL sets
// db.dsn.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p) // <path>/config.yml
	}
	v.SetConfigName("config")

	v.SetEnvPrefix("app")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("db.dsn", "DATABASE_URL", "APP_DB_DSN"); err != nil {
		return Config{}, fmt.Errorf("bind DATABASE_URL: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port:      v.GetString("port"),
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
		DSN:       v.GetString("db.dsn"),
		Catalog: CatalogConfig{
			DefaultLimit: v.GetInt("catalog.default_limit"),
			MaxLimit:     v.GetInt("catalog.max_limit"),
		},
		Sessions: SessionsConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("auth.sessions.backend"))),
			TTL:     v.GetDuration("auth.sessions.ttl"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Sessions.Backend {
	case SessionsNone, SessionsMemory, SessionsRedis:
	default:
		return fmt.Errorf("unknown auth.sessions.backend %q", c.Sessions.Backend)
	}
	if c.DSN == "" {
		return errors.New("db.dsn (or DATABASE_URL) is required")
	}
	if c.Catalog.DefaultLimit <= 0 {
		return fmt.Errorf("catalog.default_limit must be positive, got %d", c.Catalog.DefaultLimit)
	}
	return nil
}
