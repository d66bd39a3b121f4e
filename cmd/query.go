// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kuzzle/sdk/internal/logging"
	"kuzzle/sdk/pkg/types"
)

var (
	queryIndex      string
	queryCollection string
	queryStrategy   string
	queryBody       string
	queryArgs       []string
	queryRefresh    string
)

// queryCmd sends an arbitrary controller/action request.
var queryCmd = &cobra.Command{
	Use:   "query <controller> <action>",
	Short: "Send a raw request and print the response envelope",
	Long: `The query command sends any controller/action pair the route table knows
about and prints the full response envelope as JSON.

Examples:
  kuzzle query server now
  kuzzle query index exists --index nyc-open-data
  kuzzle query document search --index nyc-open-data --collection yellow-taxi \
      --body '{"query":{"match_all":{}}}' --arg size=10`,
	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildQuery(args[0], args[1])
		if err != nil {
			return err
		}

		k, _, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		res, err := k.Query(cmd.Context(), req, types.QueryOptions{Refresh: queryRefresh})
		if err != nil {
			return fmt.Errorf("%s", logging.PresentError("query", err))
		}
		return printJSON(res)
	},
}

// buildQuery assembles a request from the query flags.
func buildQuery(controller, action string) (types.Request, error) {
	req := types.NewRequest(controller, action).
		WithIndex(queryIndex).
		WithCollection(queryCollection).
		WithStrategy(queryStrategy)

	if queryBody != "" {
		var body map[string]any
		if err := json.Unmarshal([]byte(queryBody), &body); err != nil {
			return req, fmt.Errorf("--body must be a JSON object: %w", err)
		}
		req = req.WithBody(body)
	}
	for _, a := range queryArgs {
		key, value, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return req, fmt.Errorf("--arg %q must be key=value", a)
		}
		req = req.WithQueryField(key, value)
	}
	return req, nil
}

func init() {
	rootCmd.AddCommand(queryCmd)
	f := queryCmd.Flags()
	f.StringVar(&queryIndex, "index", "", "Index name")
	f.StringVar(&queryCollection, "collection", "", "Collection name")
	f.StringVar(&queryStrategy, "strategy", "", "Authentication strategy")
	f.StringVar(&queryBody, "body", "", "Request body as a JSON object")
	f.StringArrayVar(&queryArgs, "arg", nil, "Query-string argument as key=value (repeatable)")
	f.StringVar(&queryRefresh, "refresh", "", "Refresh policy (e.g. wait_for)")
}
