// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package controllers holds what every operation package shares: the narrow
// client interface operations are given, and the precondition, validation and
// dispatch helpers they run before and after a query.
package controllers

import (
	"context"
	"fmt"
	"strings"

	"kuzzle/sdk/pkg/types"
)

// Client is what an operation needs from the SDK client.
// *kuzzle.Kuzzle implements it.
type Client interface {
	Query(ctx context.Context, req types.Request, opts types.QueryOptions) (*types.Response, error)
	JWT() string
	SetJWT(jwt string)
}

// Arg is a named string argument checked by RequireArgs.
type Arg struct {
	Name  string
	Value string
}

// RequireArgs fails with a validation error when any argument is empty.
func RequireArgs(op string, args ...Arg) error {
	names := make([]string, 0, len(args))
	empty := false
	for _, a := range args {
		names = append(names, a.Name)
		if a.Value == "" {
			empty = true
		}
	}
	if !empty {
		return nil
	}
	return types.NewError(types.KindValidation, op, fmt.Sprintf("%s must not be empty", joinNames(names)))
}

// RequireLogin fails with a precondition error when the session has no credential.
func RequireLogin(op string, c Client) error {
	if c.JWT() == "" {
		return types.NewError(types.KindPrecondition, op, "you need to be logged in to use this function")
	}
	return nil
}

// Do sends req and returns the envelope, turning an envelope error into the
// returned error.
func Do(ctx context.Context, c Client, req types.Request, opts types.QueryOptions) (*types.Response, error) {
	resp, err := c.Query(ctx, req, opts)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp, nil
}

// DoResult is Do followed by decoding the result into out.
func DoResult(ctx context.Context, c Client, op string, req types.Request, out any) error {
	resp, err := Do(ctx, c, req, types.QueryOptions{})
	if err != nil {
		return err
	}
	return resp.DecodeResult(op, out)
}

// joinNames renders "a", "a and b", "a, b and c".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return "argument"
	case 1:
		return names[0] + " argument"
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1] + " arguments"
	}
}
