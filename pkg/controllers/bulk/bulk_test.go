// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package bulk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuzzle/sdk/pkg/controllers/controllerstest"
	"kuzzle/sdk/pkg/types"
)

func TestImport(t *testing.T) {
	c := &controllerstest.Client{Reply: controllerstest.Result(map[string]any{
		"successes": []map[string]any{{"_id": "a"}},
		"errors":    []map[string]any{},
	})}

	data := []map[string]any{
		{"index": map[string]any{"_id": "a"}},
		{"name": "Alice"},
	}
	res, err := Import(context.Background(), c, "nyc", "taxi", data)
	require.NoError(t, err)
	assert.Len(t, res.Successes, 1)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "import", c.Last().Action())
	assert.Contains(t, c.Last().Body(), "bulkData")
}

func TestImport_Validation(t *testing.T) {
	c := &controllerstest.Client{}

	_, err := Import(context.Background(), c, "nyc", "taxi", nil)
	assert.True(t, types.IsKind(err, types.KindValidation))

	_, err = Import(context.Background(), c, "", "taxi", []map[string]any{{"a": 1}})
	assert.True(t, types.IsKind(err, types.KindValidation))
	assert.Empty(t, c.Requests)
}
