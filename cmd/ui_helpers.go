// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// runWithSpinner runs fn while a transient spinner shows text.
// The cursor is hidden for the duration and restored afterwards.
func runWithSpinner(text string, fn func() error) error {
	cursor.Hide()
	defer cursor.Show()

	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		return fn()
	}
	err = fn()
	_ = spinner.Stop()
	return err
}

// printJSON prints v as indented JSON.
func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// notLoggedIn prints the hint shown when a command needs a session token.
func notLoggedIn() {
	pterm.Println("🔒 You're not logged in yet!")
	pterm.Println("   Run 'kuzzle login' and pass the token with --jwt or KUZZLE_JWT.")
}
