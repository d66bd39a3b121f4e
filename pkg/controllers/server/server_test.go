// Copyright (c) 2025 Kuzzle
// Licensed under the MIT License. See LICENSE file in the project root for details.

package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuzzle/sdk/pkg/controllers/controllerstest"
	"kuzzle/sdk/pkg/types"
)

func TestNow(t *testing.T) {
	c := &controllerstest.Client{Reply: controllerstest.Result(map[string]any{"now": 1700000000123})}

	now, err := Now(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000123), now)
	assert.Equal(t, "server", c.Last().Controller())
	assert.Equal(t, "now", c.Last().Action())
}

func TestInfo(t *testing.T) {
	c := &controllerstest.Client{Reply: controllerstest.Result(map[string]any{
		"serverInfo": map[string]any{"kuzzle": map[string]any{"version": "2.27.0"}},
	})}

	info, err := Info(context.Background(), c)
	require.NoError(t, err)
	assert.Contains(t, info, "kuzzle")
}

func TestAdminExists(t *testing.T) {
	c := &controllerstest.Client{Reply: controllerstest.Result(map[string]any{"exists": true})}

	exists, err := AdminExists(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNow_MissingResult(t *testing.T) {
	c := &controllerstest.Client{}

	_, err := Now(context.Background(), c)
	assert.True(t, types.IsKind(err, types.KindDecode))
}
