// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package collection implements the collection controller.
package collection

import (
	"context"

	"kuzzle/sdk/pkg/controllers"
	"kuzzle/sdk/pkg/types"
)

const controller = "collection"

// Create creates collection in index. mapping may be nil.
func Create(ctx context.Context, c controllers.Client, index, collection string, mapping map[string]any) error {
	const op = "collection.Create"
	if err := controllers.RequireArgs(op,
		controllers.Arg{Name: "index", Value: index},
		controllers.Arg{Name: "collection", Value: collection},
	); err != nil {
		return err
	}
	req := types.NewRequest(controller, "create").WithIndex(index).WithCollection(collection)
	if len(mapping) > 0 {
		req = req.WithBody(mapping)
	}
	_, err := controllers.Do(ctx, c, req, types.QueryOptions{})
	return err
}

// Exists reports whether collection exists in index.
func Exists(ctx context.Context, c controllers.Client, index, collection string) (bool, error) {
	const op = "collection.Exists"
	if err := controllers.RequireArgs(op,
		controllers.Arg{Name: "index", Value: index},
		controllers.Arg{Name: "collection", Value: collection},
	); err != nil {
		return false, err
	}
	req := types.NewRequest(controller, "exists").WithIndex(index).WithCollection(collection)
	var exists bool
	if err := controllers.DoResult(ctx, c, op, req, &exists); err != nil {
		return false, err
	}
	return exists, nil
}
