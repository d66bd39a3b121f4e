// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"kuzzle/sdk/internal/logging"
	"kuzzle/sdk/pkg/types"
)

const httpLogPrefix = "protocol:http"

// UserAgent is sent with every HTTP request.
var UserAgent = "kuzzle-sdk-go/1.0"

// HTTP implements Protocol over the server's REST routes.
// Each request is resolved through a route table into a verb and a URL.
type HTTP struct {
	// baseURL is scheme://host:port, without trailing slash
	baseURL string
	// routes maps (controller, action) to HTTP routes
	routes Routes
	// client is the underlying HTTP client with the configured timeout
	client *http.Client
	state  State
	log    *slog.Logger
}

// NewHTTP creates an offline HTTP protocol for the given options and route table.
// An empty route table is rejected: the protocol could not serve any request.
func NewHTTP(options types.Options, routes Routes) (*HTTP, error) {
	if len(routes) == 0 {
		return nil, errors.New("protocol: HTTP requires a non-empty route table")
	}
	return &HTTP{
		baseURL: options.BaseURL("https", "http"),
		routes:  routes,
		client:  &http.Client{Timeout: options.HTTPTimeout()},
		state:   StateOffline,
		log:     options.Log(),
	}, nil
}

// BaseURL returns the server address requests are sent to.
func (h *HTTP) BaseURL() string { return h.baseURL }

// Routes returns the route table used to resolve requests.
func (h *HTTP) Routes() Routes { return h.routes }

func (h *HTTP) IsReady() bool { return h.state == StateReady }

func (h *HTTP) Close() error {
	h.state = StateOffline
	return nil
}

// Connect probes the server root. Any HTTP reply, whatever its status, proves
// the server is reachable.
func (h *HTTP) Connect(ctx context.Context) error {
	if h.state == StateReady {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/", nil)
	if err != nil {
		return types.WrapError(types.KindNetwork, "HTTP.Connect", "invalid server address", err)
	}
	h.setStandardHeaders(req)

	resp, err := h.client.Do(req)
	if err != nil {
		return types.WrapError(types.KindNetwork, "HTTP.Connect", "server unreachable", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	h.state = StateReady
	h.log.Debug(fmt.Sprintf("%s - connected to %s (probe status %d)", httpLogPrefix, h.baseURL, resp.StatusCode))
	return nil
}

// Send resolves req through the route table and performs the HTTP call.
// The route is resolved before the state check, so a missing route is reported
// whatever the connection state.
func (h *HTTP) Send(ctx context.Context, req types.Request, opts types.QueryOptions) (*types.Response, error) {
	route, err := h.routes.Resolve(req.Controller(), req.Action())
	if err != nil {
		return nil, err
	}
	if h.state != StateReady {
		return nil, types.NewError(types.KindNotConnected, "HTTP.Send", "unable to execute request: not connected to a Kuzzle server")
	}

	httpReq, err := h.buildRequest(ctx, route, req, opts)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, types.WrapError(types.KindNetwork, "HTTP.Send", fmt.Sprintf("%s %s failed", route.Verb, route.URL), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.WrapError(types.KindNetwork, "HTTP.Send", "read response body", err)
	}
	if h.log.Enabled(ctx, slog.LevelDebug) {
		h.log.Debug(fmt.Sprintf("%s - %s %s -> %d %s", httpLogPrefix, httpReq.Method, httpReq.URL.Path, resp.StatusCode, logging.Mask(string(raw))))
	}

	var out types.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, types.WrapError(types.KindDecode, "HTTP.Send", fmt.Sprintf("invalid response envelope (HTTP %d)", resp.StatusCode), err)
	}
	return &out, nil
}

// buildRequest attaches a JSON body, query parameters and the bearer
// credential, each only when present.
func (h *HTTP) buildRequest(ctx context.Context, route Route, req types.Request, opts types.QueryOptions) (*http.Request, error) {
	body := req.Body()
	if len(opts.Volatile) > 0 {
		body["volatile"] = opts.Volatile
	}

	var reader io.Reader
	if len(body) > 0 {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, types.WrapError(types.KindValidation, "HTTP.Send", "request body is not JSON-serializable", err)
		}
		reader = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, route.Verb, h.baseURL+route.Path(req), reader)
	if err != nil {
		return nil, types.WrapError(types.KindNetwork, "HTTP.Send", "malformed request", err)
	}
	h.setStandardHeaders(httpReq)
	if reader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	query := httpReq.URL.Query()
	for key, value := range req.Query() {
		query.Set(key, queryValue(value))
	}
	if opts.Refresh != "" {
		query.Set("refresh", opts.Refresh)
	}
	if len(query) > 0 {
		httpReq.URL.RawQuery = query.Encode()
	}

	if jwt := req.JWT(); jwt != "" {
		httpReq.Header.Set("Authorization", "Bearer "+jwt)
	}
	return httpReq, nil
}

func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
}

// queryValue renders a JSON value as a query-string parameter.
func queryValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

func (h *HTTP) Once(string, Listener) error {
	return unsupported("HTTP.Once")
}

func (h *HTTP) ListenerCount(string) (int, error) {
	return 0, unsupported("HTTP.ListenerCount")
}
