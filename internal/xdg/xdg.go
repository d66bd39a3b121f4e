// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package xdg resolves the XDG Base Directory paths used by the kuzzle CLI.
//
// It falls back to the traditional ~/.config location when XDG_CONFIG_HOME is
// unset and keeps the directory private, since it may hold connection settings.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "kuzzle"

// ConfigDir returns the XDG config directory for the CLI.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/kuzzle when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
