package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	BaseURL  string `env:"BASE_URL, default=http://localhost:8080"`

	JWT       JWTConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	RateLimit RateLimitConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET"`
	// Expires bounds token validity; CookieExpiresDays bounds the cookie
	// carrying it. The two are intentionally independent.
	Expires           time.Duration `env:"JWT_EXPIRES, default=24h"`
	CookieExpiresDays int           `env:"JWT_COOKIE_EXPIRES_DAYS, default=90"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tours"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=noreply@wildtrails.io"`
}

type RateLimitConfig struct {
	Max    int64         `env:"RATE_LIMIT_MAX,    default=100"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=1h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// Production refuses to start without a signing secret; development gets
	// a throwaway one so local runs work out of the box.
	if cfg.JWT.Secret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("config: JWT_SECRET is required in production")
		}
		cfg.JWT.Secret = "dev-only-insecure-secret"
	}

	return &cfg, nil
}

// IsProduction reports whether the sanitized error mode applies.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
