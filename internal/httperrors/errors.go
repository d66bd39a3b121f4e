// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns network failures into user-friendly CLI messages.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"kuzzle/sdk/pkg/types"
)

// Category classifies a network failure.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryTimeout
	CategoryDNS
	CategoryRefused
	CategoryTLS
)

// IsNetworkError reports whether err comes from the network exchange itself.
func IsNetworkError(err error) bool {
	return types.IsKind(err, types.KindNetwork)
}

// Classify returns the category of a network error.
func Classify(err error) Category {
	switch {
	case isTimeoutError(err):
		return CategoryTimeout
	case isDNSError(err):
		return CategoryDNS
	case isConnectionRefusedError(err):
		return CategoryRefused
	case isSSLError(err):
		return CategoryTLS
	default:
		return CategoryGeneric
	}
}

// FormatNetworkError prints troubleshooting help for err, reached while
// doing context against host, and returns err wrapped.
// Non-network errors are returned unchanged.
func FormatNetworkError(err error, context, host string) error {
	if err == nil || !IsNetworkError(err) {
		return err
	}

	switch Classify(err) {
	case CategoryTimeout:
		pterm.Printf("⏱️  Connection timeout while %s\n", context)
		pterm.Println()
		pterm.Printf("%s took too long to respond. Check the server load or raise the timeout with 'kuzzle config set timeout 30s'.\n", host)
	case CategoryDNS:
		pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
		pterm.Println()
		pterm.Printf("Unable to look up %s. Check --host and your DNS settings.\n", host)
	case CategoryRefused:
		pterm.Printf("🚫 Connection refused while %s\n", context)
		pterm.Println()
		pterm.Printf("Nothing is listening on %s. Check that the server is running and --port is right.\n", host)
	case CategoryTLS:
		pterm.Printf("🔒 Secure connection failed while %s\n", context)
		pterm.Println()
		pterm.Println("Cannot establish a TLS connection. Check --ssl and the server certificate.")
	default:
		pterm.Printf("❌ Cannot reach %s while %s\n", host, context)
	}
	pterm.Println()
	pterm.Debug.Printf("Technical details: %s\n", shorten(err.Error()))

	return fmt.Errorf("network error: %w", err)
}

func isTimeoutError(err error) bool {
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate")
}

func shorten(s string) string {
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}
