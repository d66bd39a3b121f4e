// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package index implements the index controller.
package index

import (
	"context"

	"kuzzle/sdk/pkg/controllers"
	"kuzzle/sdk/pkg/types"
)

const controller = "index"

// Create creates a new index.
func Create(ctx context.Context, c controllers.Client, index string) error {
	const op = "index.Create"
	if err := controllers.RequireArgs(op, controllers.Arg{Name: "index", Value: index}); err != nil {
		return err
	}
	_, err := controllers.Do(ctx, c, types.NewRequest(controller, "create").WithIndex(index), types.QueryOptions{})
	return err
}

// Exists reports whether index exists.
func Exists(ctx context.Context, c controllers.Client, index string) (bool, error) {
	const op = "index.Exists"
	if err := controllers.RequireArgs(op, controllers.Arg{Name: "index", Value: index}); err != nil {
		return false, err
	}
	var exists bool
	if err := controllers.DoResult(ctx, c, op, types.NewRequest(controller, "exists").WithIndex(index), &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns the names of every index the current user can see.
func List(ctx context.Context, c controllers.Client) ([]string, error) {
	var out struct {
		Indexes []string `json:"indexes"`
	}
	if err := controllers.DoResult(ctx, c, "index.List", types.NewRequest(controller, "list"), &out); err != nil {
		return nil, err
	}
	return out.Indexes, nil
}
