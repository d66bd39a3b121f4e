// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"kuzzle/sdk/internal/logging"
	"kuzzle/sdk/pkg/controllers/auth"
	"kuzzle/sdk/pkg/types"
)

var whoamiStrategy string

// whoamiCmd shows the user the session token belongs to.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	Long: `The whoami command validates the session token with the server and shows
the user identifier and the strategies the user can authenticate with.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		k, _, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		user, err := auth.GetCurrentUser(cmd.Context(), k, whoamiStrategy)
		if err != nil {
			if types.IsKind(err, types.KindPrecondition) {
				notLoggedIn()
				return nil
			}
			return fmt.Errorf("%s", logging.PresentError("whoami", err))
		}
		pterm.Printf("👤 Current user: %s\n", user.ID)
		if len(user.Strategies) > 0 {
			pterm.Printf("   Strategies: %s\n", strings.Join(user.Strategies, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().StringVar(&whoamiStrategy, "strategy", "local", "Authentication strategy")
}
