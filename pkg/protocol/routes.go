// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package protocol

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"kuzzle/sdk/pkg/types"
)

//go:embed routes.json
var defaultRoutesJSON []byte

// Route is the HTTP route of one (controller, action) pair.
// URL may contain the :index, :collection, :strategy and :_id placeholders.
type Route struct {
	URL  string `json:"url"`
	Verb string `json:"verb"`
}

// Routes maps controller -> action -> route. It is read-only once loaded.
type Routes map[string]map[string]Route

var allowedVerbs = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
	"PATCH":  true,
}

// RouteNotFoundError reports a (controller, action) pair absent from the table.
type RouteNotFoundError struct {
	Controller string
	Action     string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("unable to find route for (controller/action) %s/%s", e.Controller, e.Action)
}

// Resolve returns the route declared for controller/action.
// Lookup is an exact two-level match.
func (r Routes) Resolve(controller, action string) (Route, error) {
	if actions, ok := r[controller]; ok {
		if route, ok := actions[action]; ok {
			return route, nil
		}
	}
	notFound := &RouteNotFoundError{Controller: controller, Action: action}
	return Route{}, types.WrapError(types.KindRouteNotFound, "Routes.Resolve", "no route declared", notFound)
}

// Path substitutes the request's qualifiers into the route URL.
// Unset qualifiers substitute to the empty string.
func (rt Route) Path(req types.Request) string {
	replacer := strings.NewReplacer(
		":index", url.PathEscape(req.Index()),
		":collection", url.PathEscape(req.Collection()),
		":strategy", url.PathEscape(req.Strategy()),
		":_id", url.PathEscape(req.ID()),
	)
	return replacer.Replace(rt.URL)
}

// ParseRoutes decodes a JSON route declaration and validates every entry.
func ParseRoutes(r io.Reader) (Routes, error) {
	var routes Routes
	if err := json.NewDecoder(r).Decode(&routes); err != nil {
		return nil, fmt.Errorf("parse routes: %w", err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("parse routes: no route declared")
	}
	for controller, actions := range routes {
		for action, route := range actions {
			if route.URL == "" {
				return nil, fmt.Errorf("parse routes: %s/%s has an empty url", controller, action)
			}
			verb := strings.ToUpper(route.Verb)
			if !allowedVerbs[verb] {
				return nil, fmt.Errorf("parse routes: %s/%s has unsupported verb %q", controller, action, route.Verb)
			}
			route.Verb = verb
			actions[action] = route
		}
	}
	return routes, nil
}

// LoadRoutes reads a route declaration file.
func LoadRoutes(path string) (Routes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open routes: %w", err)
	}
	defer f.Close()
	return ParseRoutes(f)
}

// DefaultRoutes returns the route table shipped with the SDK.
func DefaultRoutes() Routes {
	routes, err := ParseRoutes(bytes.NewReader(defaultRoutesJSON))
	if err != nil {
		panic(err)
	}
	return routes
}
