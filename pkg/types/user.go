// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package types

// User is the current user as returned by auth:getCurrentUser.
type User struct {
	ID         string         `json:"_id"`
	Content    map[string]any `json:"_source"`
	Strategies []string       `json:"strategies"`
}

// TokenValidity is the result of auth:checkToken.
type TokenValidity struct {
	Valid bool `json:"valid"`
	// State explains why a token is invalid. Empty for valid tokens.
	State string `json:"state,omitempty"`
	// ExpiresAt is an epoch timestamp in milliseconds, 0 when invalid.
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

// UserRight is one entry of auth:getMyRights.
type UserRight struct {
	Controller string `json:"controller"`
	Action     string `json:"action"`
	Index      string `json:"index"`
	Collection string `json:"collection"`
	Value      string `json:"value"`
}
