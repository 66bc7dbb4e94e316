package sqlitekv

import (
	"context"
	"path/filepath"
	"testing"

	"weldtrack-golang/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	kv, err := New(path)
	require.NoError(t, err)
	defer kv.Close()

	ctx := context.Background()

	_, err = kv.Get(ctx, "weldtrack-rates")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, kv.Set(ctx, "weldtrack-rates", `[{"id":"r1"}]`))
	got, err := kv.Get(ctx, "weldtrack-rates")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"r1"}]`, got)

	// повторная запись по тому же ключу — перезапись
	require.NoError(t, kv.Set(ctx, "weldtrack-rates", `[]`))
	got, err = kv.Get(ctx, "weldtrack-rates")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
}

func TestSqliteKV_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	kv, err := New(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "weldtrack-welders", `[]`))
	require.NoError(t, kv.Close())

	kv2, err := New(path)
	require.NoError(t, err)
	defer kv2.Close()

	got, err := kv2.Get(ctx, "weldtrack-welders")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
}
