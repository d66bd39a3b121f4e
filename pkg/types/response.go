// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package types

import (
	"bytes"
	"encoding/json"
)

// Response is the standardized envelope returned by every server route,
// including routes added by plugins.
//
// Exactly one of Error or Result is meaningful: callers check Err first.
type Response struct {
	RequestID  string          `json:"requestId"`
	Status     int             `json:"status"`
	Error      *KuzzleError    `json:"error"`
	Controller string          `json:"controller,omitempty"`
	Action     string          `json:"action,omitempty"`
	Index      string          `json:"index,omitempty"`
	Collection string          `json:"collection,omitempty"`
	Volatile   map[string]any  `json:"volatile,omitempty"`
	Result     json.RawMessage `json:"result"`

	// Realtime replies only.
	RoomID  string `json:"room,omitempty"`
	Channel string `json:"channel,omitempty"`
}

// Err returns the server error carried by the envelope, or nil.
func (r *Response) Err() error {
	if r == nil || r.Error == nil {
		return nil
	}
	return r.Error
}

// HasResult reports whether the envelope carries a non-null result.
func (r *Response) HasResult() bool {
	trimmed := bytes.TrimSpace(r.Result)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// DecodeResult unmarshals the result payload into v.
// A shape mismatch is reported as a decode SdkError.
func (r *Response) DecodeResult(op string, v any) error {
	if !r.HasResult() {
		return NewError(KindDecode, op, "response has no result")
	}
	if err := json.Unmarshal(r.Result, v); err != nil {
		return WrapError(KindDecode, op, "unexpected result shape", err)
	}
	return nil
}
