// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokeninfo

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestParse(t *testing.T) {
	iat := time.Unix(1700000000, 0)
	exp := iat.Add(time.Hour)

	tests := []struct {
		name   string
		claims gojwt.MapClaims
		wantID string
		expiry time.Time
	}{
		{
			name:   "id claim",
			claims: gojwt.MapClaims{"_id": "alice", "iat": iat.Unix(), "exp": exp.Unix()},
			wantID: "alice",
			expiry: exp,
		},
		{
			name:   "subject fallback",
			claims: gojwt.MapClaims{"sub": "bob"},
			wantID: "bob",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Parse(sign(t, tt.claims))
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, info.UserID)
			assert.True(t, tt.expiry.Equal(info.ExpiresAt))
		})
	}
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("not-a-token")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Unix(1700000000, 0)

	assert.False(t, Info{}.Expired(now))
	assert.True(t, Info{ExpiresAt: now.Add(-time.Second)}.Expired(now))
	assert.False(t, Info{ExpiresAt: now.Add(time.Second)}.Expired(now))
}
