// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package controllerstest provides a recording controllers.Client for tests of
// operation packages.
package controllerstest

import (
	"context"
	"encoding/json"

	"kuzzle/sdk/pkg/types"
)

// Client records every query and answers with Reply.
// The session credential is attached the way the SDK client does it.
type Client struct {
	Token    string
	Requests []types.Request
	Options  []types.QueryOptions
	Reply    func(req types.Request) (*types.Response, error)
}

// Query records req and returns Reply's answer, or an empty 200 envelope.
func (c *Client) Query(_ context.Context, req types.Request, opts types.QueryOptions) (*types.Response, error) {
	if c.Token != "" && req.JWT() == "" {
		req = req.WithJWT(c.Token)
	}
	c.Requests = append(c.Requests, req)
	c.Options = append(c.Options, opts)
	if c.Reply == nil {
		return &types.Response{Status: 200}, nil
	}
	return c.Reply(req)
}

func (c *Client) JWT() string        { return c.Token }
func (c *Client) SetJWT(token string) { c.Token = token }

// Last returns the most recent request. It panics when none was sent.
func (c *Client) Last() types.Request {
	return c.Requests[len(c.Requests)-1]
}

// Result returns a reply func answering every request with result.
func Result(result any) func(types.Request) (*types.Response, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		panic(err)
	}
	return func(req types.Request) (*types.Response, error) {
		return &types.Response{
			Status:     200,
			Controller: req.Controller(),
			Action:     req.Action(),
			Result:     raw,
		}, nil
	}
}

// Failure returns a reply func answering every request with a server error.
func Failure(status int, message string) func(types.Request) (*types.Response, error) {
	return func(types.Request) (*types.Response, error) {
		return &types.Response{
			Status: status,
			Error:  &types.KuzzleError{Status: status, Message: message},
		}, nil
	}
}
