// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth implements the auth controller: login, logout, token checks and
// management of the current user's credentials.
//
// Login stores the issued token on the client; Logout clears it. Every function
// taking a strategy validates it before any request is sent.
package auth

import (
	"context"

	"kuzzle/sdk/pkg/controllers"
	"kuzzle/sdk/pkg/types"
)

const controller = "auth"

// CheckToken checks the validity of a token. No session is required.
func CheckToken(ctx context.Context, c controllers.Client, token string) (*types.TokenValidity, error) {
	const op = "auth.CheckToken"
	if err := controllers.RequireArgs(op, controllers.Arg{Name: "token", Value: token}); err != nil {
		return nil, err
	}

	req := types.NewRequest(controller, "checkToken").WithBodyField("token", token)
	var validity types.TokenValidity
	if err := controllers.DoResult(ctx, c, op, req, &validity); err != nil {
		return nil, err
	}
	return &validity, nil
}

// CreateMyCredentials creates credentials of the current user for strategy.
func CreateMyCredentials(ctx context.Context, c controllers.Client, strategy, username, password string) (map[string]any, error) {
	const op = "auth.CreateMyCredentials"
	if err := controllers.RequireArgs(op,
		controllers.Arg{Name: "strategy", Value: strategy},
		controllers.Arg{Name: "username", Value: username},
		controllers.Arg{Name: "password", Value: password},
	); err != nil {
		return nil, err
	}
	if err := controllers.RequireLogin(op, c); err != nil {
		return nil, err
	}

	req := types.NewRequest(controller, "createMyCredentials").
		WithStrategy(strategy).
		WithBodyField("username", username).
		WithBodyField("password", password)
	var out map[string]any
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CredentialsExist reports whether the current user has credentials for strategy.
func CredentialsExist(ctx context.Context, c controllers.Client, strategy string) (bool, error) {
	const op = "auth.CredentialsExist"
	if err := strategyAndLogin(op, c, strategy); err != nil {
		return false, err
	}

	req := types.NewRequest(controller, "credentialsExist").WithStrategy(strategy)
	var exists bool
	if err := controllers.DoResult(ctx, c, op, req, &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteMyCredentials deletes the current user's credentials for strategy.
func DeleteMyCredentials(ctx context.Context, c controllers.Client, strategy string) (bool, error) {
	const op = "auth.DeleteMyCredentials"
	if err := strategyAndLogin(op, c, strategy); err != nil {
		return false, err
	}

	req := types.NewRequest(controller, "deleteMyCredentials").WithStrategy(strategy)
	var out struct {
		Acknowledged bool `json:"acknowledged"`
	}
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return false, err
	}
	return out.Acknowledged, nil
}

// GetCurrentUser returns the user the session credential belongs to.
func GetCurrentUser(ctx context.Context, c controllers.Client, strategy string) (*types.User, error) {
	const op = "auth.GetCurrentUser"
	if err := strategyAndLogin(op, c, strategy); err != nil {
		return nil, err
	}

	req := types.NewRequest(controller, "getCurrentUser").WithStrategy(strategy)
	var user types.User
	if err := controllers.DoResult(ctx, c, op, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMyCredentials returns the current user's credential content for strategy.
func GetMyCredentials(ctx context.Context, c controllers.Client, strategy string) (map[string]any, error) {
	const op = "auth.GetMyCredentials"
	if err := strategyAndLogin(op, c, strategy); err != nil {
		return nil, err
	}

	req := types.NewRequest(controller, "getMyCredentials").WithStrategy(strategy)
	var out map[string]any
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMyRights returns the rights granted to the current user.
func GetMyRights(ctx context.Context, c controllers.Client, strategy string) ([]types.UserRight, error) {
	const op = "auth.GetMyRights"
	if err := strategyAndLogin(op, c, strategy); err != nil {
		return nil, err
	}

	req := types.NewRequest(controller, "getMyRights").WithStrategy(strategy)
	var out struct {
		Hits []types.UserRight `json:"hits"`
	}
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return nil, err
	}
	return out.Hits, nil
}

// GetStrategies lists the authentication strategies the server accepts.
func GetStrategies(ctx context.Context, c controllers.Client) ([]string, error) {
	const op = "auth.GetStrategies"
	var strategies []string
	if err := controllers.DoResult(ctx, c, op, types.NewRequest(controller, "getStrategies"), &strategies); err != nil {
		return nil, err
	}
	return strategies, nil
}

// Login authenticates with strategy and stores the issued token on the client.
// The token is returned as well.
func Login(ctx context.Context, c controllers.Client, strategy, username, password string) (string, error) {
	const op = "auth.Login"
	if err := controllers.RequireArgs(op,
		controllers.Arg{Name: "strategy", Value: strategy},
		controllers.Arg{Name: "username", Value: username},
		controllers.Arg{Name: "password", Value: password},
	); err != nil {
		return "", err
	}

	req := types.NewRequest(controller, "login").
		WithStrategy(strategy).
		WithBodyField("username", username).
		WithBodyField("password", password)
	var out struct {
		JWT string `json:"jwt"`
	}
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return "", err
	}
	if out.JWT == "" {
		return "", types.NewError(types.KindDecode, op, "no jwt in login result")
	}

	c.SetJWT(out.JWT)
	return c.JWT(), nil
}

// Logout revokes the session credential on the server, then clears it locally.
func Logout(ctx context.Context, c controllers.Client) error {
	const op = "auth.Logout"
	if err := controllers.RequireLogin(op, c); err != nil {
		return err
	}

	if _, err := controllers.Do(ctx, c, types.NewRequest(controller, "logout"), types.QueryOptions{}); err != nil {
		return err
	}
	c.SetJWT("")
	return nil
}

// UpdateMyCredentials replaces the current user's credential content for strategy.
func UpdateMyCredentials(ctx context.Context, c controllers.Client, strategy string, content map[string]any) (map[string]any, error) {
	const op = "auth.UpdateMyCredentials"
	if len(content) == 0 {
		return nil, types.NewError(types.KindValidation, op, "content argument must not be empty")
	}
	if err := strategyAndLogin(op, c, strategy); err != nil {
		return nil, err
	}

	req := types.NewRequest(controller, "updateMyCredentials").
		WithStrategy(strategy).
		WithBody(content)
	var out map[string]any
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func strategyAndLogin(op string, c controllers.Client, strategy string) error {
	if err := controllers.RequireArgs(op, controllers.Arg{Name: "strategy", Value: strategy}); err != nil {
		return err
	}
	return controllers.RequireLogin(op, c)
}
