// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"

	"kuzzle/sdk/pkg/types"
)

// PresentError formats an error for user display with masking.
// Server errors show their status; the diagnostic stack is left out.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	var kErr *types.KuzzleError
	if errors.As(err, &kErr) {
		return fmt.Sprintf("%s: server replied %d: %s", context, kErr.Status, Mask(kErr.Message))
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}
