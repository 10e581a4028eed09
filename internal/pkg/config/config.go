package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Seed    SeedConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET"`
	CookieName   string        `env:"SESSION_COOKIE, default=session"`
	TTL          time.Duration `env:"SESSION_TTL,    default=168h"`
	CookieSecure bool          `env:"COOKIE_SECURE,  default=false"`
}

type SeedConfig struct {
	OnStartup bool   `env:"SEED_ON_STARTUP, default=false"`
	Fixtures  string `env:"SEED_FIXTURES"`
	Users     int    `env:"SEED_USERS,      default=25"`
	Articles  int    `env:"SEED_ARTICLES,   default=100"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=paywall"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// devSessionSecret signs session cookies when ENV=development and no secret is set.
const devSessionSecret = "paywall-development-secret"

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects settings the service cannot run with and fills the
// development session secret.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		if !c.IsDevelopment() {
			return errors.New("SESSION_SECRET is required outside development")
		}
		c.Session.Secret = devSessionSecret
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	return nil
}

// Load reads an optional .env file, then the process environment, for the API server.
func Load() *Config {
	return mustLoad(LoadFrom)
}

// LoadSeed is Load for the seed command, which signs no cookies and so
// needs no session secret.
func LoadSeed() *Config {
	return mustLoad(LoadSeedFrom)
}

func mustLoad(load func(context.Context, envconfig.Lookuper) (*Config, error)) *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("config: failed to read .env: %v", err))
	}

	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom resolves configuration from lookuper and validates it.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	cfg, err := process(ctx, lookuper)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadSeedFrom resolves configuration from lookuper without the session checks.
func LoadSeedFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	return process(ctx, lookuper)
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
