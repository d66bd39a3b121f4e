// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Builders(t *testing.T) {
	req := NewRequest("document", "create").
		WithIndex("nyc-open-data").
		WithCollection("yellow-taxi").
		WithStrategy("local").
		WithID("doc-1").
		WithJWT("T1").
		WithBodyField("name", "Alice").
		WithQueryField("_id", "doc-1")

	assert.Equal(t, "document", req.Controller())
	assert.Equal(t, "create", req.Action())
	assert.Equal(t, "nyc-open-data", req.Index())
	assert.Equal(t, "yellow-taxi", req.Collection())
	assert.Equal(t, "local", req.Strategy())
	assert.Equal(t, "doc-1", req.ID())
	assert.Equal(t, "T1", req.JWT())
	assert.Equal(t, map[string]any{"name": "Alice"}, req.Body())
	assert.Equal(t, map[string]any{"_id": "doc-1"}, req.Query())
	assert.True(t, req.HasBody())
	assert.True(t, req.HasQuery())
}

func TestRequest_Empty(t *testing.T) {
	req := NewRequest("server", "now")

	assert.Empty(t, req.Index())
	assert.Empty(t, req.JWT())
	assert.False(t, req.HasBody())
	assert.False(t, req.HasQuery())
	assert.NotNil(t, req.Body())
	assert.NotNil(t, req.Query())
}

func TestRequest_BodyFieldOverwrite(t *testing.T) {
	req := NewRequest("auth", "login").
		WithBodyField("username", "alice").
		WithBodyField("username", "bob")

	assert.Equal(t, map[string]any{"username": "bob"}, req.Body())
}

func TestRequest_CopyOnWrite(t *testing.T) {
	base := NewRequest("auth", "login").WithBodyField("username", "alice")
	derived := base.WithBodyField("password", "secret").WithJWT("T1")

	assert.Equal(t, map[string]any{"username": "alice"}, base.Body())
	assert.Empty(t, base.JWT())
	assert.Len(t, derived.Body(), 2)

	// Mutating a returned map must not leak into the request.
	body := base.Body()
	body["username"] = "mallory"
	assert.Equal(t, "alice", base.Body()["username"])

	src := map[string]any{"a": 1}
	withBody := NewRequest("c", "a").WithBody(src)
	src["a"] = 2
	assert.Equal(t, 1, withBody.Body()["a"])
}

func TestRequest_Equal(t *testing.T) {
	base := NewRequest("document", "create").WithIndex("nyc").WithBodyField("tags", []string{"a"})

	tests := []struct {
		name  string
		other Request
		want  bool
	}{
		{name: "same fields built separately", other: NewRequest("document", "create").WithIndex("nyc").WithBodyField("tags", []string{"a"}), want: true},
		{name: "copy", other: base, want: true},
		{name: "different index", other: base.WithIndex("paris"), want: false},
		{name: "different id", other: base.WithID("doc-1"), want: false},
		{name: "different body value", other: base.WithBodyField("tags", []string{"b"}), want: false},
		{name: "extra query", other: base.WithQueryField("refresh", "wait_for"), want: false},
		{name: "different credential", other: base.WithJWT("T1"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
			assert.Equal(t, tt.want, tt.other.Equal(base))
		})
	}

	assert.True(t, NewRequest("server", "now").Equal(NewRequest("server", "now").WithBody(map[string]any{})))
}

func TestResponse_Err(t *testing.T) {
	var nilResp *Response
	assert.NoError(t, nilResp.Err())

	ok := &Response{Status: 200}
	assert.NoError(t, ok.Err())

	failed := &Response{Status: 401, Error: &KuzzleError{Message: "wrong credentials", Status: 401}}
	err := failed.Err()
	require.Error(t, err)
	assert.Equal(t, "[401] wrong credentials", err.Error())
}

func TestResponse_DecodeResult(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		wantErr bool
	}{
		{name: "object", result: `{"jwt":"T1"}`},
		{name: "missing", result: ``, wantErr: true},
		{name: "null", result: `null`, wantErr: true},
		{name: "wrong shape", result: `[1,2]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{Result: []byte(tt.result)}
			var out struct {
				JWT string `json:"jwt"`
			}
			err := resp.DecodeResult("test", &out)
			if tt.wantErr {
				assert.True(t, IsKind(err, KindDecode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "T1", out.JWT)
		})
	}
}
