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

	// JWTSecret signs session tokens; the process refuses to start without it.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=360h"`

	// BcryptCost is the hashing work factor. Range is validated at startup;
	// a bad value is a fatal configuration error.
	BcryptCost int `env:"BCRYPT_COST, default=10"`

	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate enforces the settings the core cannot run without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.BcryptCost < 4 {
		return fmt.Errorf("BCRYPT_COST must be >= 4, got %d", c.BcryptCost)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %v", c.TokenTTL)
	}
	return nil
}

// IsDevelopment reports whether error responses may include diagnostic detail.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
