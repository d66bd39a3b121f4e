// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package document implements the document controller.
package document

import (
	"context"

	"kuzzle/sdk/pkg/controllers"
	"kuzzle/sdk/pkg/types"
)

const controller = "document"

// Document is a stored document as returned by create and search.
type Document struct {
	ID      string         `json:"_id"`
	Version int            `json:"_version,omitempty"`
	Source  map[string]any `json:"_source"`
}

// SearchResult is one page of document:search.
type SearchResult struct {
	Total int        `json:"total"`
	Hits  []Document `json:"hits"`
}

// Create stores body as a new document. An empty id lets the server generate one.
func Create(ctx context.Context, c controllers.Client, index, collection, id string, body map[string]any, opts types.QueryOptions) (*Document, error) {
	const op = "document.Create"
	if err := indexAndCollection(op, index, collection); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, types.NewError(types.KindValidation, op, "body argument must not be empty")
	}

	req := types.NewRequest(controller, "create").
		WithIndex(index).
		WithCollection(collection).
		WithBody(body)
	if id != "" {
		req = req.WithQueryField("_id", id)
	}

	resp, err := controllers.Do(ctx, c, req, opts)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := resp.DecodeResult(op, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Count returns how many documents match query. A nil query counts everything.
func Count(ctx context.Context, c controllers.Client, index, collection string, query map[string]any) (int, error) {
	const op = "document.Count"
	if err := indexAndCollection(op, index, collection); err != nil {
		return 0, err
	}
	req := types.NewRequest(controller, "count").WithIndex(index).WithCollection(collection)
	if len(query) > 0 {
		req = req.WithBodyField("query", query)
	}
	var out struct {
		Count int `json:"count"`
	}
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// Search returns the documents matching query, from offset from, at most size hits.
// size <= 0 leaves the page size to the server.
func Search(ctx context.Context, c controllers.Client, index, collection string, query map[string]any, from, size int) (*SearchResult, error) {
	const op = "document.Search"
	if err := indexAndCollection(op, index, collection); err != nil {
		return nil, err
	}
	req := types.NewRequest(controller, "search").WithIndex(index).WithCollection(collection)
	if len(query) > 0 {
		req = req.WithBodyField("query", query)
	}
	if from > 0 {
		req = req.WithQueryField("from", from)
	}
	if size > 0 {
		req = req.WithQueryField("size", size)
	}
	var out SearchResult
	if err := controllers.DoResult(ctx, c, op, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func indexAndCollection(op, index, collection string) error {
	return controllers.RequireArgs(op,
		controllers.Arg{Name: "index", Value: index},
		controllers.Arg{Name: "collection", Value: collection},
	)
}
