package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantrang/shopkit/pkg/kv"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("requires a path", func(t *testing.T) {
		t.Parallel()
		_, err := kv.NewFileStore("")
		assert.Error(t, err)
	})

	t.Run("contents survive reopening", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "state.json")

		store, err := kv.NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "access_token", "tok-abc"))
		require.NoError(t, store.Set(ctx, "cart", `[{"id":7,"quantity":2}]`))
		require.NoError(t, store.Close())

		reopened, err := kv.NewFileStore(path)
		require.NoError(t, err)
		defer reopened.Close()

		token, err := reopened.Get(ctx, "access_token")
		require.NoError(t, err)
		assert.Equal(t, "tok-abc", token)

		cart, err := reopened.Get(ctx, "cart")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":7,"quantity":2}]`, cart)
	})

	t.Run("corrupt state file degrades to empty store", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		store, err := kv.NewFileStore(path)
		require.NoError(t, err)
		defer store.Close()

		_, err = store.Get(ctx, "access_token")
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)

		// The store remains writable after recovering.
		require.NoError(t, store.Set(ctx, "access_token", "tok"))
		value, err := store.Get(ctx, "access_token")
		require.NoError(t, err)
		assert.Equal(t, "tok", value)
	})

	t.Run("remove deletes from disk", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "state.json")

		store, err := kv.NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "user_data", "{}"))
		require.NoError(t, store.Remove(ctx, "user_data"))
		require.NoError(t, store.Close())

		reopened, err := kv.NewFileStore(path)
		require.NoError(t, err)
		defer reopened.Close()

		_, err = reopened.Get(ctx, "user_data")
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	})

	t.Run("no temp file left behind", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")

		store, err := kv.NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "k", "v"))
		require.NoError(t, store.Close())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "state.json", entries[0].Name())
	})
}
