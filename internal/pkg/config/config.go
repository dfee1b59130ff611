package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string   `env:"PORT,         default=8000"`
	Env         string   `env:"ENV,          default=development"`
	LogLevel    string   `env:"LOG_LEVEL,    default=info"`
	SentryDSN   string   `env:"SENTRY_DSN"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	Database DatabaseConfig
	Auth     AuthConfig
	Media    MediaConfig
}

type DatabaseConfig struct {
	URL             string        `env:"DB_URL, required"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,     default=25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,     default=10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,  default=30m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE,       default=true"`
}

type AuthConfig struct {
	JWTSecret     string `env:"JWT_SECRET, required"`
	ExpireMinutes int    `env:"JWT_EXPIRE_MIN, default=43200"`
}

// TokenTTL is the lifetime of an issued session token.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.ExpireMinutes) * time.Minute
}

type MediaConfig struct {
	Dir        string `env:"MEDIA_DIR,         default=./media"`
	PublicBase string `env:"PUBLIC_MEDIA_BASE, default=http://localhost:8000/media"`
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
// The returned value is built once at startup and treated as read-only.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Auth.ExpireMinutes <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRE_MIN must be positive, got %d", cfg.Auth.ExpireMinutes)
	}
	return &cfg, nil
}
