// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package types

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"
)

// DefaultTimeout bounds every HTTP exchange when Options.Timeout is unset.
const DefaultTimeout = 10 * time.Second

// Options configures how a protocol reaches the server.
type Options struct {
	Host    string
	Port    int
	SSL     bool
	Timeout time.Duration
	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

// NewOptions returns options for host:port with default timeout and plain HTTP.
func NewOptions(host string, port int) Options {
	return Options{Host: host, Port: port, Timeout: DefaultTimeout}
}

// BaseURL returns scheme://host:port without a trailing slash.
func (o Options) BaseURL(secureScheme, plainScheme string) string {
	scheme := plainScheme
	if o.SSL {
		scheme = secureScheme
	}
	return fmt.Sprintf("%s://%s", scheme, net.JoinHostPort(o.Host, strconv.Itoa(o.Port)))
}

// HTTPTimeout returns the configured timeout or DefaultTimeout.
func (o Options) HTTPTimeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// Log returns the configured logger or slog.Default().
func (o Options) Log() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// QueryOptions tunes a single query.
type QueryOptions struct {
	// Refresh is forwarded as the "refresh" query parameter (e.g. "wait_for").
	Refresh string
	// Volatile is sent alongside the body and echoed back by the server.
	Volatile map[string]any
}
