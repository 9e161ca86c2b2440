// Package config loads service settings from an optional YAML file, an
// optional .env file and the process environment, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"solerelief/internal/domain"
)

// DefaultPath is read when SOLERELIEF_CONFIG is unset.
const DefaultPath = "config.yaml"

// Config holds every runtime setting.
type Config struct {
	Addr          string `yaml:"addr"`
	WebDir        string `yaml:"webDir"`
	LogLevel      string `yaml:"logLevel"`
	DatabaseURL   string `yaml:"databaseURL"`
	DefaultUserID string `yaml:"defaultUserId"`

	// Source is the YAML file that was read, or empty when none existed.
	Source string `yaml:"-"`
}

// UsePostgres reports whether a database is configured. Without one the
// service keeps everything in memory.
func (c Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

func defaults() Config {
	return Config{
		Addr:          ":8080",
		WebDir:        "web",
		LogLevel:      "info",
		DefaultUserID: domain.DefaultUserID,
	}
}

// Load builds the configuration. A missing YAML file or .env file is not an
// error; a malformed one is. An empty path selects SOLERELIEF_CONFIG or
// DefaultPath.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = env("SOLERELIEF_CONFIG", DefaultPath)
	}

	cfg := defaults()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults and environment only.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
		cfg.Source = path
	}

	cfg.Addr = env("ADDR", cfg.Addr)
	cfg.WebDir = env("WEB_DIR", cfg.WebDir)
	cfg.LogLevel = env("LOG_LEVEL", cfg.LogLevel)
	cfg.DatabaseURL = env("DATABASE_URL", cfg.DatabaseURL)
	cfg.DefaultUserID = env("DEFAULT_USER_ID", cfg.DefaultUserID)

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return errors.New("config: addr is required (set in config.yaml or ADDR)")
	}
	if strings.TrimSpace(cfg.DefaultUserID) == "" {
		return errors.New("config: defaultUserId must not be empty")
	}
	return nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
