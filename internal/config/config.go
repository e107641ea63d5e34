// Runtime configuration, parsed once from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the server reads from the environment.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	DBPath   string `env:"DB_PATH" envDefault:"./data/quintle.db"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret     string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiresDay int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName    string `env:"COOKIE_NAME" envDefault:"quintle_token"`

	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	Production   bool   `env:"PRODUCTION" envDefault:"false"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`

	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"10"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Load reads .env (best effort) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// JWTExpiry returns the configured token lifetime.
func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiresDay) * 24 * time.Hour
}
