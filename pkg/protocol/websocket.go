// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package protocol

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"

	"kuzzle/sdk/pkg/types"
)

const wsLogPrefix = "protocol:websocket"

// WebSocket is the streaming protocol. It can open and close the socket, but
// request exchange and realtime listeners are not implemented: Send, Once and
// ListenerCount return an unsupported error.
type WebSocket struct {
	url    string
	dialer *websocket.Dialer
	conn   *websocket.Conn
	state  State
	log    *slog.Logger
}

// NewWebSocket creates an offline WebSocket protocol for the given options.
func NewWebSocket(options types.Options) *WebSocket {
	return &WebSocket{
		url: options.BaseURL("wss", "ws"),
		dialer: &websocket.Dialer{
			HandshakeTimeout: options.HTTPTimeout(),
		},
		state: StateOffline,
		log:   options.Log(),
	}
}

func (w *WebSocket) IsReady() bool { return w.state == StateReady }

// Connect dials the server. It is a no-op when the socket is already open.
func (w *WebSocket) Connect(ctx context.Context) error {
	if w.state == StateReady {
		return nil
	}
	conn, _, err := w.dialer.DialContext(ctx, w.url, nil)
	if err != nil {
		return types.WrapError(types.KindNetwork, "WebSocket.Connect", "dial failed", err)
	}
	w.conn = conn
	w.state = StateReady
	w.log.Debug(fmt.Sprintf("%s - connected to %s", wsLogPrefix, w.url))
	return nil
}

func (w *WebSocket) Send(context.Context, types.Request, types.QueryOptions) (*types.Response, error) {
	return nil, unsupported("WebSocket.Send")
}

// Close closes the socket if open and moves to offline.
func (w *WebSocket) Close() error {
	w.state = StateOffline
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *WebSocket) Once(string, Listener) error {
	return unsupported("WebSocket.Once")
}

func (w *WebSocket) ListenerCount(string) (int, error) {
	return 0, unsupported("WebSocket.ListenerCount")
}
