// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKind(t *testing.T) {
	inner := NewError(KindRouteNotFound, "Routes.Resolve", "no route declared")
	outer := WrapError(KindNetwork, "HTTP.Send", "failed", inner)
	wrapped := fmt.Errorf("context: %w", outer)

	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{name: "direct", err: inner, kind: KindRouteNotFound, want: true},
		{name: "outer kind", err: outer, kind: KindNetwork, want: true},
		{name: "inner kind through chain", err: wrapped, kind: KindRouteNotFound, want: true},
		{name: "absent kind", err: wrapped, kind: KindDecode, want: false},
		{name: "plain error", err: errors.New("boom"), kind: KindNetwork, want: false},
		{name: "nil", err: nil, kind: KindNetwork, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKind(tt.err, tt.kind))
		})
	}
}

func TestSdkError_Format(t *testing.T) {
	assert.Equal(t, "[auth.Login] strategy argument must not be empty",
		NewError(KindValidation, "auth.Login", "strategy argument must not be empty").Error())

	err := WrapError(KindNetwork, "HTTP.Connect", "server unreachable", errors.New("connection refused"))
	assert.Equal(t, "[HTTP.Connect] server unreachable: connection refused", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "connection refused")
}

func TestOptions_BaseURL(t *testing.T) {
	opts := NewOptions("localhost", 7512)
	assert.Equal(t, "http://localhost:7512", opts.BaseURL("https", "http"))
	assert.Equal(t, DefaultTimeout, opts.HTTPTimeout())
	assert.NotNil(t, opts.Log())

	opts.SSL = true
	opts.Host = "::1"
	assert.Equal(t, "wss://[::1]:7512", opts.BaseURL("wss", "ws"))
}
