package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the central typed configuration struct.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Services ServicesConfig
}

type AppConfig struct {
	Name  string `envconfig:"APP_NAME" default:"GoProvider"`
	Env   string `envconfig:"APP_ENV" default:"local"` // local | production | testing
	Debug bool   `envconfig:"APP_DEBUG" default:"true"`
	Port  string `envconfig:"APP_PORT" default:"8000"`
}

type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// ServicesConfig configures the application's service providers.
type ServicesConfig struct {
	// Prefix namespaces the ids of providers built by the application.
	Prefix string `envconfig:"SERVICE_PREFIX" default:""`
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg, err := config.Load()
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// MustLoad is Load for main packages.
func MustLoad(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(err)
	}
	return cfg
}
