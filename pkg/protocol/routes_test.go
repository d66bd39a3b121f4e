// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package protocol

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuzzle/sdk/pkg/types"
)

func TestRoutes_Resolve(t *testing.T) {
	routes := DefaultRoutes()

	route, err := routes.Resolve("auth", "login")
	require.NoError(t, err)
	assert.Equal(t, Route{URL: "/_login/:strategy", Verb: "POST"}, route)

	_, err = routes.Resolve("foo", "bar")
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindRouteNotFound))

	var notFound *RouteNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "foo", notFound.Controller)
	assert.Equal(t, "bar", notFound.Action)

	_, err = routes.Resolve("auth", "bar")
	assert.True(t, types.IsKind(err, types.KindRouteNotFound))
}

func TestRoute_Path(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		req   types.Request
		want  string
	}{
		{
			name:  "strategy",
			route: Route{URL: "/credentials/:strategy/_me", Verb: "GET"},
			req:   types.NewRequest("auth", "getMyCredentials").WithStrategy("local"),
			want:  "/credentials/local/_me",
		},
		{
			name:  "index and collection",
			route: Route{URL: "/:index/:collection/_search", Verb: "POST"},
			req:   types.NewRequest("document", "search").WithIndex("nyc").WithCollection("taxi"),
			want:  "/nyc/taxi/_search",
		},
		{
			name:  "resource id",
			route: Route{URL: "/credentials/:strategy/:_id/_create", Verb: "POST"},
			req:   types.NewRequest("security", "createCredentials").WithStrategy("local").WithID("alice"),
			want:  "/credentials/local/alice/_create",
		},
		{
			name:  "unset placeholder",
			route: Route{URL: "/_login/:strategy", Verb: "POST"},
			req:   types.NewRequest("auth", "login"),
			want:  "/_login/",
		},
		{
			name:  "escaped",
			route: Route{URL: "/:index/_exists", Verb: "GET"},
			req:   types.NewRequest("index", "exists").WithIndex("a/b"),
			want:  "/a%2Fb/_exists",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.route.Path(tt.req))
		})
	}
}

func TestParseRoutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: `{"server":{"now":{"url":"/_now","verb":"get"}}}`},
		{name: "not json", input: `nope`, wantErr: "parse routes"},
		{name: "empty", input: `{}`, wantErr: "no route declared"},
		{name: "empty url", input: `{"server":{"now":{"url":"","verb":"GET"}}}`, wantErr: "empty url"},
		{name: "bad verb", input: `{"server":{"now":{"url":"/_now","verb":"FETCH"}}}`, wantErr: "unsupported verb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes, err := ParseRoutes(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "GET", routes["server"]["now"].Verb)
		})
	}
}

func TestLoadRoutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"myplugin":{"hello":{"url":"/_plugin/hello/:index","verb":"GET"}}}`), 0o600))

	routes, err := LoadRoutes(path)
	require.NoError(t, err)
	route, err := routes.Resolve("myplugin", "hello")
	require.NoError(t, err)
	assert.Equal(t, "/_plugin/hello/:index", route.URL)

	_, err = LoadRoutes(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDefaultRoutes_CoverOperations(t *testing.T) {
	routes := DefaultRoutes()
	pairs := [][2]string{
		{"auth", "checkToken"}, {"auth", "createMyCredentials"}, {"auth", "credentialsExist"},
		{"auth", "deleteMyCredentials"}, {"auth", "getCurrentUser"}, {"auth", "getMyCredentials"},
		{"auth", "getMyRights"}, {"auth", "getStrategies"}, {"auth", "login"}, {"auth", "logout"},
		{"auth", "updateMyCredentials"},
		{"server", "now"}, {"server", "info"}, {"server", "adminExists"},
		{"index", "create"}, {"index", "exists"}, {"index", "list"},
		{"collection", "create"}, {"collection", "exists"},
		{"document", "create"}, {"document", "count"}, {"document", "search"},
		{"bulk", "import"},
		{"security", "createCredentials"},
	}
	for _, p := range pairs {
		_, err := routes.Resolve(p[0], p[1])
		assert.NoError(t, err, "%s/%s", p[0], p[1])
	}
}
