// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads and stores the kuzzle CLI configuration.
// Settings come from the XDG config file, then KUZZLE_* environment variables,
// then command-line flags. Credentials are never written to the file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"

	"kuzzle/sdk/internal/xdg"
	"kuzzle/sdk/pkg/types"
)

const logPrefix = "config:Load"

// Config holds CLI settings.
type Config struct {
	Host       string        `json:"host" envconfig:"HOST"`
	Port       int           `json:"port" envconfig:"PORT"`
	SSL        bool          `json:"ssl" envconfig:"SSL"`
	Timeout    time.Duration `json:"timeout" envconfig:"TIMEOUT"`
	LogLevel   string        `json:"log_level" envconfig:"LOG_LEVEL"`
	RoutesFile string        `json:"routes_file,omitempty" envconfig:"ROUTES_FILE"`

	// JWT is read from KUZZLE_JWT only and never saved.
	JWT string `json:"-" envconfig:"JWT"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Host:     "localhost",
		Port:     7512,
		Timeout:  types.DefaultTimeout,
		LogLevel: "info",
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file, if any, then applies KUZZLE_* overrides.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}
	// Fields without a matching variable keep their value.
	if err := envconfig.Process("kuzzle", &c); err != nil {
		return c, fmt.Errorf("%s - %w", logPrefix, err)
	}
	return c, nil
}

// LoadFile reads the config file only. A missing file yields Default().
func LoadFile() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return c, nil
	case err != nil:
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%s - parse %s: %w", logPrefix, p, err)
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Validate checks the settings needed to reach a server.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%s - host is required", logPrefix)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%s - port %d is out of range", logPrefix, c.Port)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%s - timeout must not be negative", logPrefix)
	}
	return nil
}

// Options converts the settings into SDK options.
func (c Config) Options() types.Options {
	opts := types.NewOptions(c.Host, c.Port)
	opts.SSL = c.SSL
	if c.Timeout > 0 {
		opts.Timeout = c.Timeout
	}
	return opts
}

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{"host", "port", "ssl", "timeout", "log_level", "routes_file"}

// Set assigns one setting from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "host":
		c.Host = value
	case "port":
		p, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s - port: %w", logPrefix, err)
		}
		c.Port = p
	case "ssl":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s - ssl: %w", logPrefix, err)
		}
		c.SSL = b
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s - timeout: %w", logPrefix, err)
		}
		c.Timeout = d
	case "log_level":
		switch value {
		case "debug", "info", "warn", "error":
			c.LogLevel = value
		default:
			return fmt.Errorf("%s - unknown log level %q", logPrefix, value)
		}
	case "routes_file":
		c.RoutesFile = value
	default:
		return fmt.Errorf("%s - unknown setting %q", logPrefix, key)
	}
	return nil
}

// Get returns one setting in the string form accepted by Set.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "host":
		return c.Host, nil
	case "port":
		return strconv.Itoa(c.Port), nil
	case "ssl":
		return strconv.FormatBool(c.SSL), nil
	case "timeout":
		return c.Timeout.String(), nil
	case "log_level":
		return c.LogLevel, nil
	case "routes_file":
		return c.RoutesFile, nil
	}
	return "", fmt.Errorf("%s - unknown setting %q", logPrefix, key)
}
