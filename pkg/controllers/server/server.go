// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package server implements the server controller.
package server

import (
	"context"

	"kuzzle/sdk/pkg/controllers"
	"kuzzle/sdk/pkg/types"
)

const controller = "server"

// Now returns the server's current time as an epoch timestamp in milliseconds.
func Now(ctx context.Context, c controllers.Client) (int64, error) {
	var out struct {
		Now int64 `json:"now"`
	}
	if err := controllers.DoResult(ctx, c, "server.Now", types.NewRequest(controller, "now"), &out); err != nil {
		return 0, err
	}
	return out.Now, nil
}

// Info returns the server information document.
func Info(ctx context.Context, c controllers.Client) (map[string]any, error) {
	var out struct {
		ServerInfo map[string]any `json:"serverInfo"`
	}
	if err := controllers.DoResult(ctx, c, "server.Info", types.NewRequest(controller, "info"), &out); err != nil {
		return nil, err
	}
	return out.ServerInfo, nil
}

// AdminExists reports whether an administrator account exists.
func AdminExists(ctx context.Context, c controllers.Client) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := controllers.DoResult(ctx, c, "server.AdminExists", types.NewRequest(controller, "adminExists"), &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}
