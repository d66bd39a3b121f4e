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

// rightsCmd lists the rights of the current user.
var rightsCmd = &cobra.Command{
	Use:   "rights",
	Short: "List the current user's rights",

	RunE: func(cmd *cobra.Command, args []string) error {
		k, _, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		rights, err := auth.GetMyRights(cmd.Context(), k, "local")
		if err != nil {
			if types.IsKind(err, types.KindPrecondition) {
				notLoggedIn()
				return nil
			}
			return fmt.Errorf("%s", logging.PresentError("rights", err))
		}
		if len(rights) == 0 {
			pterm.Info.Println("No rights")
			return nil
		}

		data := pterm.TableData{{"Controller", "Action", "Index", "Collection", "Value"}}
		for _, r := range rights {
			data = append(data, []string{r.Controller, r.Action, r.Index, r.Collection, r.Value})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

// strategiesCmd lists the authentication strategies the server accepts.
var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the server's authentication strategies",

	RunE: func(cmd *cobra.Command, args []string) error {
		k, _, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		strategies, err := auth.GetStrategies(cmd.Context(), k)
		if err != nil {
			return fmt.Errorf("%s", logging.PresentError("strategies", err))
		}
		for _, s := range strategies {
			pterm.Println("  • " + s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rightsCmd)
	rootCmd.AddCommand(strategiesCmd)
}
