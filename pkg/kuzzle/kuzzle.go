// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package kuzzle provides the SDK client. A Kuzzle owns one protocol and one
// session credential, and is the single entry point operations call through.
//
// A Kuzzle is not safe for concurrent use. Callers sharing one between
// goroutines must guard it with their own mutex.
package kuzzle

import (
	"context"

	"kuzzle/sdk/pkg/protocol"
	"kuzzle/sdk/pkg/types"
)

// Kuzzle is the SDK client used to dial with the server.
type Kuzzle struct {
	protocol protocol.Protocol
	jwt      string
}

// New creates a client over the given protocol. The protocol is not connected.
//
//	routes := protocol.DefaultRoutes()
//	http, err := protocol.NewHTTP(types.NewOptions("localhost", 7512), routes)
//	if err != nil { ... }
//	k := kuzzle.New(http)
func New(p protocol.Protocol) *Kuzzle {
	return &Kuzzle{protocol: p}
}

// Protocol returns the underlying protocol.
func (k *Kuzzle) Protocol() protocol.Protocol { return k.protocol }

// Connect connects the protocol. It does nothing when already connected.
func (k *Kuzzle) Connect(ctx context.Context) error {
	if k.protocol.IsReady() {
		return nil
	}
	return k.protocol.Connect(ctx)
}

// Close disconnects the protocol.
func (k *Kuzzle) Close() error {
	return k.protocol.Close()
}

// Query sends req through the protocol and returns the raw envelope.
// When the session holds a credential and req carries none, the session
// credential is attached. Server errors are left in the envelope.
func (k *Kuzzle) Query(ctx context.Context, req types.Request, opts types.QueryOptions) (*types.Response, error) {
	if k.jwt != "" && req.JWT() == "" {
		req = req.WithJWT(k.jwt)
	}
	return k.protocol.Send(ctx, req, opts)
}

// JWT returns the session credential, or "" when none is set.
func (k *Kuzzle) JWT() string { return k.jwt }

// SetJWT replaces the session credential. An empty string clears it.
func (k *Kuzzle) SetJWT(jwt string) { k.jwt = jwt }
