// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import "kuzzle/sdk/pkg/protocol"

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

func init() {
	protocol.UserAgent = "kuzzle-cli/" + Version
}
