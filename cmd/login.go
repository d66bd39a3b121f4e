// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"kuzzle/sdk/internal/logging"
	"kuzzle/sdk/internal/terminal"
	"kuzzle/sdk/pkg/controllers/auth"
)

var (
	loginStrategy string
	loginUsername string
	loginPassword string
	loginExport   bool
)

// loginCmd authenticates against the server and prints the issued token.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and print a session token",
	Long: `The login command authenticates with the given strategy (local by default)
and prints the session token issued by the server. The token is not stored:
pass it to later commands with --jwt or the KUZZLE_JWT environment variable.

The password is prompted without echo when --password is not given.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		username := loginUsername
		if username == "" {
			var err error
			if username, err = terminal.ReadLine("Username: "); err != nil {
				return err
			}
		}
		password := loginPassword
		if password == "" {
			prompt := "Password: "
			var err error
			if password, err = terminal.ReadSecret(prompt); err != nil {
				return err
			}
			if terminal.IsInteractive() {
				terminal.ClearPreviousLines(len(prompt))
			}
		}

		k, _, err := newClient(ctx)
		if err != nil {
			return err
		}
		var jwt string
		err = runWithSpinner("Logging in", func() error {
			var lerr error
			jwt, lerr = auth.Login(ctx, k, loginStrategy, username, password)
			return lerr
		})
		if err != nil {
			return fmt.Errorf("%s", logging.PresentError("login", err))
		}

		if loginExport {
			fmt.Printf("export KUZZLE_JWT=%s\n", jwt)
			return nil
		}
		pterm.Success.Printf("Logged in as %s\n", username)
		fmt.Println(jwt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginStrategy, "strategy", "local", "Authentication strategy")
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username (prompted when empty)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when empty)")
	loginCmd.Flags().BoolVar(&loginExport, "export", false, "Print a shell export line instead")
}
