// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main is the entry point for the kuzzle CLI.
// It sends controller/action requests to a Kuzzle server through the SDK.
package main

import (
	"kuzzle/sdk/cmd"
)

func main() {
	cmd.Execute()
}
