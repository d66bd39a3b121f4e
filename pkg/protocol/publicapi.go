// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package protocol

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"kuzzle/sdk/pkg/types"
)

// routesCacheKey identifies a fetched route table: one per server and credential.
type routesCacheKey struct {
	baseURL string
	jwt     string
}

var (
	// Process-wide cache of fetched route tables.
	routesCache     = map[routesCacheKey]Routes{}
	routesCacheLock sync.RWMutex
)

// publicAPIAction is one action entry of server:publicApi.
type publicAPIAction struct {
	HTTP []Route `json:"http"`
}

// FetchRoutes builds a route table from the server's public API description
// (GET /_publicApi). Actions without an HTTP route are skipped. Results are
// cached in memory per base URL and credential; jwt may be empty.
func FetchRoutes(ctx context.Context, client *http.Client, baseURL, jwt string) (Routes, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	key := routesCacheKey{baseURL: baseURL, jwt: jwt}

	routesCacheLock.RLock()
	cached, ok := routesCache[key]
	routesCacheLock.RUnlock()
	if ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/_publicApi", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	if jwt != "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, types.WrapError(types.KindNetwork, "FetchRoutes", "fetch public API", err)
	}
	defer resp.Body.Close()

	var envelope types.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, types.WrapError(types.KindDecode, "FetchRoutes", fmt.Sprintf("invalid response envelope (HTTP %d)", resp.StatusCode), err)
	}
	if err := envelope.Err(); err != nil {
		return nil, err
	}

	var api map[string]map[string]publicAPIAction
	if err := envelope.DecodeResult("FetchRoutes", &api); err != nil {
		return nil, err
	}

	routes := Routes{}
	for controller, actions := range api {
		for action, desc := range actions {
			if len(desc.HTTP) == 0 {
				continue
			}
			route := desc.HTTP[0]
			verb := strings.ToUpper(route.Verb)
			if route.URL == "" || !allowedVerbs[verb] {
				continue
			}
			if routes[controller] == nil {
				routes[controller] = map[string]Route{}
			}
			routes[controller][action] = Route{URL: route.URL, Verb: verb}
		}
	}
	if len(routes) == 0 {
		return nil, types.NewError(types.KindDecode, "FetchRoutes", "public API declares no HTTP route")
	}

	routesCacheLock.Lock()
	routesCache[key] = routes
	routesCacheLock.Unlock()
	return routes, nil
}

// ClearRoutesCache forgets every fetched route table (primarily for testing).
func ClearRoutesCache() {
	routesCacheLock.Lock()
	defer routesCacheLock.Unlock()
	routesCache = map[routesCacheKey]Routes{}
}
