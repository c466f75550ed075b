// Package config handles runtime configuration for the auth server.
// Values come from the environment, optionally seeded from a local
// .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the auth server.
//
// Fields:
//   - HTTPAddr / GRPCAddr: bind addresses for the public HTTP API and
//     the internal session-resolver gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx).
//   - RedisAddr / RedisPassword / RedisDB: session store connection.
//   - SessionTTL: fixed lifetime of issued sessions.
//   - SecureCookie: sets the Secure flag on the session cookie. Leave
//     true everywhere except local plain-HTTP development.
//   - CORSOrigins: browser origins allowed to call the HTTP API with
//     credentials.
type Config struct {
	HTTPAddr      string        `env:"HTTP_ADDR" envDefault:":3000"`
	GRPCAddr      string        `env:"GRPC_ADDR" envDefault:":50051"`
	DatabaseDSN   string        `env:"DATABASE_URL,required,notEmpty"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SecureCookie  bool          `env:"SECURE_COOKIE" envDefault:"true"`
	CORSOrigins   []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// Load reads an optional .env file and then parses the configuration
// from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
