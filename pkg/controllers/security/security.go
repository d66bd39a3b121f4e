// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package security implements the security controller.
package security

import (
	"context"

	"kuzzle/sdk/pkg/controllers"
	"kuzzle/sdk/pkg/types"
)

// CreateCredentials creates credentials for user kuid with strategy.
// The caller's session must have the right to manage other users.
func CreateCredentials(ctx context.Context, c controllers.Client, strategy, kuid string, credentials map[string]any) (map[string]any, error) {
	const op = "security.CreateCredentials"
	if err := controllers.RequireArgs(op,
		controllers.Arg{Name: "strategy", Value: strategy},
		controllers.Arg{Name: "kuid", Value: kuid},
	); err != nil {
		return nil, err
	}
	if len(credentials) == 0 {
		return nil, types.NewError(types.KindValidation, op, "credentials argument must not be empty")
	}
	if err := controllers.RequireLogin(op, c); err != nil {
		return nil, err
	}

	req := types.NewRequest("security", "createCredentials").
		WithStrategy(strategy).
		WithID(kuid).
		WithBody(credentials)
	var out map[string]any
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
