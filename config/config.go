// File: /config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development placeholder. Release mode refuses it.
const DefaultJWTSecret = "your-secret-key"

const (
	DriverMySQL  = "mysql"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Store StoreConfig
	Auth  AuthConfig
	Mail  MailConfig

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	RateLimitBurst     int `env:"RATE_LIMIT_BURST" envDefault:"20"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type StoreConfig struct {
	Driver        string `env:"STORE_DRIVER" envDefault:"mysql"`
	DatabaseURL   string `env:"DATABASE_URL" envDefault:"user:password@tcp(localhost:3306)/sportsbuddy?charset=utf8mb4&parseTime=True&loc=UTC"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

type AuthConfig struct {
	JWTSecret                  string        `env:"JWT_SECRET" envDefault:"your-secret-key"`
	TokenTTL                   time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	AllowAdminSelfRegistration bool          `env:"AUTH_ALLOW_ADMIN_SELF_REGISTRATION" envDefault:"false"`
	AdminEmail                 string        `env:"ADMIN_EMAIL"`
	AdminPassword              string        `env:"ADMIN_PASSWORD"`
	AdminName                  string        `env:"ADMIN_NAME" envDefault:"Administrator"`
}

type MailConfig struct {
	Enabled       bool          `env:"MAIL_ENABLED" envDefault:"false"`
	SMTPHost      string        `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort      int           `env:"SMTP_PORT" envDefault:"2525"`
	SMTPUsername  string        `env:"SMTP_USERNAME"`
	SMTPPassword  string        `env:"SMTP_PASSWORD"`
	FromEmail     string        `env:"FROM_EMAIL" envDefault:"noreply@sportsbuddy.app"`
	FromName      string        `env:"FROM_NAME" envDefault:"SportsBuddy"`
	FlushInterval time.Duration `env:"MAIL_FLUSH_INTERVAL" envDefault:"30s"`
	QueueSize     int           `env:"MAIL_QUEUE_SIZE" envDefault:"256"`
	BatchSize     int           `env:"MAIL_BATCH_SIZE" envDefault:"20"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMySQL, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.GinMode == gin.ReleaseMode && c.Auth.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be changed from the default in release mode")
	}
	if c.RateLimitPerMinute <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if (c.Auth.AdminEmail == "") != (c.Auth.AdminPassword == "") {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	if c.Mail.Enabled && c.Mail.FlushInterval <= 0 {
		return errors.New("MAIL_FLUSH_INTERVAL must be positive")
	}
	return nil
}
