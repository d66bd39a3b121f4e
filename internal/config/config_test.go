// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.NoError(t, c.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	c := Default()
	c.Host = "kuzzle.example.com"
	c.SSL = true
	c.JWT = "T1"
	require.NoError(t, Save(c))

	info, err := os.Stat(filepath.Join(dir, "kuzzle", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := os.ReadFile(filepath.Join(dir, "kuzzle", "config.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "T1")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "kuzzle.example.com", loaded.Host)
	assert.True(t, loaded.SSL)
	assert.Empty(t, loaded.JWT)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KUZZLE_PORT", "7777")
	t.Setenv("KUZZLE_JWT", "T1")
	t.Setenv("KUZZLE_TIMEOUT", "3s")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7777, c.Port)
	assert.Equal(t, "T1", c.JWT)
	assert.Equal(t, 3*time.Second, c.Timeout)
	assert.Equal(t, "localhost", c.Host)
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KUZZLE_HOST", "from-env")

	c, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "localhost", c.Host)
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "kuzzle"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kuzzle", "config.json"), []byte("{"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "no host", mutate: func(c *Config) { c.Host = "" }, wantErr: true},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "port too high", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key, value string
		want       string
		wantErr    bool
	}{
		{key: "host", value: "example.com", want: "example.com"},
		{key: "port", value: "443", want: "443"},
		{key: "port", value: "https", wantErr: true},
		{key: "ssl", value: "true", want: "true"},
		{key: "ssl", value: "maybe", wantErr: true},
		{key: "timeout", value: "30s", want: "30s"},
		{key: "timeout", value: "soon", wantErr: true},
		{key: "log_level", value: "debug", want: "debug"},
		{key: "log_level", value: "loud", wantErr: true},
		{key: "routes_file", value: "/tmp/routes.json", want: "/tmp/routes.json"},
		{key: "jwt", value: "T1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			c := Default()
			err := c.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, err := c.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptions(t *testing.T) {
	c := Default()
	c.SSL = true
	c.Timeout = 0

	opts := c.Options()
	assert.Equal(t, "https://localhost:7512", opts.BaseURL("https", "http"))
	assert.Greater(t, opts.HTTPTimeout(), time.Duration(0))
}
