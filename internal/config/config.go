// Package config loads the process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPort is used when PORT is not set.
const DefaultPort = 3000

type Config struct {
	// Port the HTTP server listens on.
	Port int
	// SiteDir, when set, is read for views/ and public/ instead of the
	// embedded copy.
	SiteDir   string
	LogLevel  slog.Level
	LogFormat string
}

// Addr is the listen address for Port on all interfaces.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads the given .env files (".env" when none are given) into the
// process environment without overriding variables that are already set, and
// then builds a Config from the environment. Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:      DefaultPort,
		SiteDir:   getenv("SITE_DIR"),
		LogLevel:  slog.LevelInfo,
		LogFormat: "text",
	}
	if v := getenv("PORT"); v != "" {
		port, err := ParsePort(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
		}
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		switch f := strings.ToLower(v); f {
		case "text", "json":
			cfg.LogFormat = f
		default:
			return Config{}, fmt.Errorf("config: LOG_FORMAT must be text or json, got %q", v)
		}
	}
	return cfg, nil
}

// ParsePort validates a TCP port number.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("config: invalid port %q: %w", s, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("config: port %d out of range 1-65535", port)
	}
	return port, nil
}
