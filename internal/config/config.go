// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept in the file; the session token lives in
// the credential store. Values from the environment (and a local .env file)
// override the file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"eventhub/cli/internal/xdg"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel       string `json:"log_level" env:"EVENTHUB_LOG_LEVEL"`
	Environment    string `json:"environment" env:"EVENTHUB_ENV"`
	SessionBackend string `json:"session_backend" env:"EVENTHUB_SESSION_BACKEND"`
	// APIURL overrides the environment's base URL when set.
	APIURL string `json:"api_url,omitempty" env:"EVENTHUB_API_URL"`

	// KeyringPassword unlocks the file keyring. Never written to disk.
	KeyringPassword string `json:"-" env:"EVENTHUB_KEYRING_PASSWORD"`
}

// nodeEnv is read when EVENTHUB_ENV is not set, matching the web client's flag.
type nodeEnv struct {
	Value string `env:"NODE_ENV"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Config {
	return Config{
		LogLevel:       "info",
		SessionBackend: "auto",
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file (defaults when missing), then applies .env and
// environment overrides.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Defaults(), err
	}
	c, err := LoadFile(p)
	if err != nil {
		return c, err
	}
	// A missing .env is the normal case.
	_ = godotenv.Load()
	return c, ApplyEnv(&c)
}

// LoadFile reads configuration from path; a missing file returns defaults.
func LoadFile(path string) (Config, error) {
	c := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}

// ApplyEnv overrides fields of c with any environment variables that are set.
func ApplyEnv(c *Config) error {
	if err := env.Parse(c); err != nil {
		return err
	}
	if c.Environment == "" {
		var ne nodeEnv
		if err := env.Parse(&ne); err != nil {
			return err
		}
		c.Environment = ne.Value
	}
	return nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(p, c)
}

// SaveFile writes c to path with 0600 permissions.
func SaveFile(path string, c Config) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Keys lists the settings that can be changed with Set, in display order.
var Keys = []string{"log_level", "environment", "session_backend", "api_url"}

var (
	logLevels       = []string{"trace", "debug", "info", "warn", "error", "off"}
	sessionBackends = []string{"auto", "keychain", "file", "memory"}
)

// Get returns the value of a settable key.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "log_level":
		return c.LogLevel, nil
	case "environment":
		return c.Environment, nil
	case "session_backend":
		return c.SessionBackend, nil
	case "api_url":
		return c.APIURL, nil
	}
	return "", fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys, ", "))
}

// Set changes one setting after checking its value.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "log_level":
		if !slices.Contains(logLevels, value) {
			return fmt.Errorf("log_level must be one of %s", strings.Join(logLevels, ", "))
		}
		c.LogLevel = value
	case "environment":
		c.Environment = value
	case "session_backend":
		if !slices.Contains(sessionBackends, value) {
			return fmt.Errorf("session_backend must be one of %s", strings.Join(sessionBackends, ", "))
		}
		c.SessionBackend = value
	case "api_url":
		if value != "" {
			u, err := url.Parse(value)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("api_url must be an absolute URL, got %q", value)
			}
		}
		c.APIURL = value
	default:
		_, err := c.Get(key)
		return err
	}
	return nil
}
