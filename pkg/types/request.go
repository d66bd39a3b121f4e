// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package types

import "reflect"

// Request describes one logical call to the server: a (controller, action) pair,
// optional resource qualifiers (index, collection, strategy, id), a body,
// query-string parameters and an optional bearer credential.
//
// Request is a value type. The With* methods return an updated copy and never
// modify the receiver, so a Request handed to a protocol is never mutated
// afterwards. Requests hold maps and cannot be compared with ==; use Equal.
type Request struct {
	controller string
	action     string
	index      string
	collection string
	strategy   string
	id         string
	jwt        string
	body       map[string]any
	query      map[string]any
}

// NewRequest creates a request for the given controller and action.
func NewRequest(controller, action string) Request {
	return Request{controller: controller, action: action}
}

func (r Request) Controller() string { return r.controller }
func (r Request) Action() string     { return r.action }
func (r Request) Index() string      { return r.index }
func (r Request) Collection() string { return r.collection }
func (r Request) Strategy() string   { return r.strategy }
func (r Request) ID() string         { return r.id }
func (r Request) JWT() string        { return r.jwt }

// Body returns a copy of the request body. It is never nil.
func (r Request) Body() map[string]any { return cloneMap(r.body) }

// Query returns a copy of the query-string parameters. It is never nil.
func (r Request) Query() map[string]any { return cloneMap(r.query) }

// HasBody reports whether at least one body field is set.
func (r Request) HasBody() bool { return len(r.body) > 0 }

// HasQuery reports whether at least one query-string parameter is set.
func (r Request) HasQuery() bool { return len(r.query) > 0 }

func (r Request) WithIndex(index string) Request {
	r.index = index
	return r
}

func (r Request) WithCollection(collection string) Request {
	r.collection = collection
	return r
}

func (r Request) WithStrategy(strategy string) Request {
	r.strategy = strategy
	return r
}

// WithID sets the resource identifier substituted for :_id in routes.
func (r Request) WithID(id string) Request {
	r.id = id
	return r
}

// WithJWT sets the bearer credential sent with this request only.
func (r Request) WithJWT(jwt string) Request {
	r.jwt = jwt
	return r
}

// WithBodyField sets one body field. A later call with the same key overwrites.
func (r Request) WithBodyField(key string, value any) Request {
	r.body = cloneMap(r.body)
	r.body[key] = value
	return r
}

// WithBody replaces the whole body.
func (r Request) WithBody(body map[string]any) Request {
	r.body = cloneMap(body)
	return r
}

// WithQueryField sets one query-string parameter.
func (r Request) WithQueryField(key string, value any) Request {
	r.query = cloneMap(r.query)
	r.query[key] = value
	return r
}

// Equal reports whether r and o describe the same call. Body and query are
// compared by content; a nil map equals an empty one.
func (r Request) Equal(o Request) bool {
	return r.controller == o.controller &&
		r.action == o.action &&
		r.index == o.index &&
		r.collection == o.collection &&
		r.strategy == o.strategy &&
		r.id == o.id &&
		r.jwt == o.jwt &&
		reflect.DeepEqual(r.Body(), o.Body()) &&
		reflect.DeepEqual(r.Query(), o.Query())
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
