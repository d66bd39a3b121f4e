// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package tokeninfo reads the claims of a session token without verifying its
// signature. Only the server can tell whether a token is valid; this is for
// display.
package tokeninfo

import (
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Info holds the claims the CLI shows.
type Info struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry is before now.
// A token without expiry never expires.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// Parse decodes token's claims. The user id is the "_id" claim, with "sub" as
// fallback.
func Parse(token string) (*Info, error) {
	parser := gojwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, gojwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("tokeninfo: %w", err)
	}
	claims := parsed.Claims.(gojwt.MapClaims)

	info := &Info{}
	if id, ok := claims["_id"].(string); ok {
		info.UserID = id
	} else if sub, err := claims.GetSubject(); err == nil {
		info.UserID = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
