// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package protocol defines the transport capability set used by the SDK client
// and its implementations. A protocol turns a types.Request into a network
// exchange and decodes the reply into a types.Response.
package protocol

import (
	"context"

	"kuzzle/sdk/pkg/types"
)

// State is the connection state of a protocol.
type State int

const (
	// StateOffline is the initial state, and the state after Close.
	StateOffline State = iota
	// StateReady means Send may be called.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	default:
		return "offline"
	}
}

// Listener receives realtime notifications.
type Listener func(*types.Response)

// Protocol is the capability set every transport provides.
// Implementations are not safe for concurrent use.
type Protocol interface {
	// Connect makes the protocol ready. It is a no-op when already ready.
	Connect(ctx context.Context) error
	// Send performs one request. It fails without I/O unless the protocol is ready.
	Send(ctx context.Context, req types.Request, opts types.QueryOptions) (*types.Response, error)
	// Close moves the protocol back to offline. Calling it twice is harmless.
	Close() error
	IsReady() bool

	// Once and ListenerCount are event primitives for streaming protocols.
	Once(event string, listener Listener) error
	ListenerCount(event string) (int, error)
}

func unsupported(op string) error {
	return types.NewError(types.KindUnsupported, op, "operation not supported by this protocol")
}
