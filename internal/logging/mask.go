// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It masks credentials in log messages and formats errors for display so that
// session tokens and passwords are not exposed in debug output.
package logging

import (
	"regexp"
)

var (
	rePassword  = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reToken     = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reJSONField = regexp.MustCompile(`(?i)("(?:jwt|token|password)"\s*:\s*")([^"]*)(")`)
	reEnvJWT    = regexp.MustCompile(`(KUZZLE_JWT=)(\S+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reJSONField.ReplaceAllString(out, "$1***$3")
	out = reEnvJWT.ReplaceAllString(out, "$1***")
	return out
}
