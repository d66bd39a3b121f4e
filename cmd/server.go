// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"kuzzle/sdk/internal/logging"
	"kuzzle/sdk/pkg/controllers/server"
)

var nowRaw bool

// nowCmd prints the server clock.
var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the server time",

	RunE: func(cmd *cobra.Command, args []string) error {
		k, _, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		ms, err := server.Now(cmd.Context(), k)
		if err != nil {
			return fmt.Errorf("%s", logging.PresentError("now", err))
		}
		if nowRaw {
			fmt.Println(ms)
			return nil
		}
		fmt.Println(time.UnixMilli(ms).UTC().Format(time.RFC3339Nano))
		return nil
	},
}

// infoCmd prints the server information document.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print server information",

	RunE: func(cmd *cobra.Command, args []string) error {
		k, cfg, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		info, err := server.Info(cmd.Context(), k)
		if err != nil {
			return fmt.Errorf("%s", logging.PresentError("info", err))
		}
		if flagVerbose {
			return printJSON(info)
		}

		admin, err := server.AdminExists(cmd.Context(), k)
		if err != nil {
			return fmt.Errorf("%s", logging.PresentError("info", err))
		}
		pterm.Printf("🗄  Server: %s:%d\n", cfg.Host, cfg.Port)
		pterm.Printf("   Version: %s\n", serverVersion(info))
		pterm.Printf("   Admin account: %t\n", admin)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(infoCmd)
	nowCmd.Flags().BoolVar(&nowRaw, "raw", false, "Print epoch milliseconds")
}
