// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package bulk implements the bulk controller.
package bulk

import (
	"context"

	"kuzzle/sdk/pkg/controllers"
	"kuzzle/sdk/pkg/types"
)

// ImportResult reports the outcome of bulk:import.
type ImportResult struct {
	Successes []map[string]any `json:"successes"`
	Errors    []map[string]any `json:"errors"`
}

// Import sends bulkData, alternating action and document lines, to the
// collection in a single request.
func Import(ctx context.Context, c controllers.Client, index, collection string, bulkData []map[string]any) (*ImportResult, error) {
	const op = "bulk.Import"
	if err := controllers.RequireArgs(op,
		controllers.Arg{Name: "index", Value: index},
		controllers.Arg{Name: "collection", Value: collection},
	); err != nil {
		return nil, err
	}
	if len(bulkData) == 0 {
		return nil, types.NewError(types.KindValidation, op, "bulkData argument must not be empty")
	}

	req := types.NewRequest("bulk", "import").
		WithIndex(index).
		WithCollection(collection).
		WithBodyField("bulkData", bulkData)
	var out ImportResult
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
