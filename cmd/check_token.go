// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"kuzzle/sdk/internal/logging"
	"kuzzle/sdk/internal/tokeninfo"
	"kuzzle/sdk/pkg/controllers/auth"
)

// checkTokenCmd asks the server whether a token is still valid.
var checkTokenCmd = &cobra.Command{
	Use:   "check-token [token]",
	Short: "Check whether a session token is valid",
	Long: `The check-token command asks the server whether the given token, or the
session token from --jwt/KUZZLE_JWT when none is given, is valid.`,
	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		k, cfg, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		token := cfg.JWT
		if len(args) == 1 {
			token = args[0]
		}
		if token == "" {
			notLoggedIn()
			return nil
		}

		if info, err := tokeninfo.Parse(token); err == nil {
			if info.UserID != "" {
				pterm.Printf("👤 Token user: %s\n", info.UserID)
			}
			if info.Expired(time.Now()) {
				pterm.Warning.Printf("Token expired at %s\n", info.ExpiresAt.Format(time.RFC3339))
			}
		}

		v, err := auth.CheckToken(cmd.Context(), k, token)
		if err != nil {
			return fmt.Errorf("%s", logging.PresentError("check-token", err))
		}
		if !v.Valid {
			pterm.Warning.Printf("Token is not valid: %s\n", v.State)
			return nil
		}
		expires := time.UnixMilli(v.ExpiresAt)
		pterm.Success.Printf("Token is valid until %s\n", expires.Format(time.RFC3339))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkTokenCmd)
}
