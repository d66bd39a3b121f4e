// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package types holds the values exchanged between the SDK layers: request
// descriptors, response envelopes, options and the structured errors raised
// either locally or by the server.
package types

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable category for errors raised by the SDK itself.
type Kind string

const (
	// KindValidation indicates a required argument was empty.
	KindValidation Kind = "validation"
	// KindPrecondition indicates an authenticated operation was called without a session.
	KindPrecondition Kind = "precondition"
	// KindNotConnected indicates Send was called on a protocol that is not ready.
	KindNotConnected Kind = "not_connected"
	// KindRouteNotFound indicates no route is declared for a (controller, action) pair.
	KindRouteNotFound Kind = "route_not_found"
	// KindNetwork indicates the underlying exchange failed.
	KindNetwork Kind = "network"
	// KindDecode indicates a reply or result could not be decoded.
	KindDecode Kind = "decode"
	// KindUnsupported indicates a capability the protocol does not provide.
	KindUnsupported Kind = "unsupported"
)

// SdkError is an error raised locally, before or around a network call.
type SdkError struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *SdkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Op, e.Message)
}

func (e *SdkError) Unwrap() error { return e.Err }

func NewError(kind Kind, op, msg string) *SdkError {
	return &SdkError{Kind: kind, Op: op, Message: msg}
}

func WrapError(kind Kind, op, msg string, err error) *SdkError {
	return &SdkError{Kind: kind, Op: op, Message: msg, Err: err}
}

// IsKind reports whether err, or any error it wraps, is an SdkError of the given kind.
func IsKind(err error, kind Kind) bool {
	var sdkErr *SdkError
	for err != nil {
		if !errors.As(err, &sdkErr) {
			return false
		}
		if sdkErr.Kind == kind {
			return true
		}
		err = sdkErr.Err
	}
	return false
}

// KuzzleError is an error returned by the server inside the response envelope.
type KuzzleError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Stack   string `json:"stack,omitempty"`
}

func (e *KuzzleError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}
