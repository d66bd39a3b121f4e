// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides terminal helpers for the CLI: reading secrets
// without echo and clearing prompt lines once answered.
package terminal

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	// stdin is shared by every prompt so input buffered by one read is not
	// lost to the next.
	stdin = bufio.NewReader(os.Stdin)

	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return isTerminal()
}

// ReadLine prints prompt and reads one line from stdin.
// A final line without newline is returned as is.
func ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadSecret prints prompt and reads a line without echo.
// When stdin is not a terminal it falls back to ReadLine.
func ReadSecret(prompt string) (string, error) {
	if !IsInteractive() {
		return ReadLine(prompt)
	}
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// ClearPreviousLines clears textLength characters of previously printed text,
// accounting for wrapping at the current terminal width and for the line the
// cursor moved to after Enter.
func ClearPreviousLines(textLength int) {
	termWidth := 80
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K")
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
