// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"kuzzle/sdk/internal/logging"
	"kuzzle/sdk/pkg/controllers/auth"
	"kuzzle/sdk/pkg/types"
)

// logoutCmd revokes the session token on the server.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the session token",
	Long: `The logout command asks the server to revoke the token given with --jwt
or KUZZLE_JWT. Nothing is stored locally, so there is nothing else to clear.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		k, _, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := auth.Logout(cmd.Context(), k); err != nil {
			if types.IsKind(err, types.KindPrecondition) {
				notLoggedIn()
				return nil
			}
			return fmt.Errorf("%s", logging.PresentError("logout", err))
		}
		pterm.Success.Println("Session token revoked")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
