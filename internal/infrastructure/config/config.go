package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-only-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Workers WorkerConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hostel_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	// TokenTTL bounds the bearer token; the session store stays authoritative.
	TokenTTL time.Duration `env:"SESSION_TOKEN_TTL,    default=24h"`
	// SnapshotTTL bounds how long a shadow snapshot outlives its process.
	SnapshotTTL time.Duration `env:"SESSION_SNAPSHOT_TTL, default=24h"`
	// RememberTTL bounds the remembered-credentials record used by Resume.
	RememberTTL time.Duration `env:"SESSION_REMEMBER_TTL, default=720h"`
}

type WorkerConfig struct {
	// Notifications is the number of sharded delivery workers.
	Notifications int `env:"NOTIFICATION_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
