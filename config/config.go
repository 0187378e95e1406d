package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "INTEREST"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Session   SessionConfig   `mapstructure:"session"`
	Limits    LimitsConfig    `mapstructure:"limits"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Capacity int           `mapstructure:"capacity"`
	Window   time.Duration `mapstructure:"window"`
}

type SessionConfig struct {
	Store     string        `mapstructure:"store"` // "memory" or "redis"
	TTL       time.Duration `mapstructure:"ttl"`
	RedisAddr string        `mapstructure:"redis_addr"`
}

type LimitsConfig struct {
	MaxPrincipal   float64 `mapstructure:"max_principal"`
	MaxRatePercent float64 `mapstructure:"max_rate_percent"`
	MaxYears       float64 `mapstructure:"max_years"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.redis_addr", "localhost:6379")

	v.SetDefault("limits.max_principal", 1_000_000_000_000.0)
	v.SetDefault("limits.max_rate_percent", 1000.0)
	v.SetDefault("limits.max_years", 100.0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads the optional config file at path, then applies INTEREST_* environment
// overrides such as INTEREST_SERVER_ADDR.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Session.Store {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("session.store must be memory or redis, got %q", c.Session.Store))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, fmt.Errorf("session.ttl must be positive, got %s", c.Session.TTL))
	}
	if c.RateLimit.Enabled && (c.RateLimit.Capacity <= 0 || c.RateLimit.Window <= 0) {
		errs = append(errs, errors.New("rate_limit.capacity and rate_limit.window must be positive"))
	}
	if c.Limits.MaxPrincipal <= 0 || c.Limits.MaxRatePercent <= 0 || c.Limits.MaxYears <= 0 {
		errs = append(errs, errors.New("limits must be positive"))
	}
	return errors.Join(errs...)
}
