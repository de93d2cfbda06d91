package cart_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantrang/shopkit/pkg/cart"
	"github.com/vantrang/shopkit/pkg/kv"
)

func newManager(t *testing.T) *cart.Manager {
	t.Helper()
	return cart.New(kv.NewMemoryStore())
}

func headphones(quantity int) cart.Item {
	return cart.Item{ID: 1, Name: "Wireless Headphones", Price: 100, ImageURL: "https://img.example.com/1.jpg", Quantity: quantity}
}

func phoneCase(quantity int) cart.Item {
	return cart.Item{ID: 2, Name: "Phone Case", Price: 50, ImageURL: "https://img.example.com/2.jpg", Quantity: quantity, Color: "black"}
}

func TestManager_Add(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("appends new lines in order", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(1)))
		require.NoError(t, m.Add(ctx, phoneCase(2)))

		items := m.Items()
		require.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, int64(2), items[1].ID)
	})

	t.Run("merges same product id into one line", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(2)))
		require.NoError(t, m.Add(ctx, headphones(1)))

		items := m.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, 300.0, m.TotalPrice())
	})

	t.Run("merge preserves line position", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(1)))
		require.NoError(t, m.Add(ctx, phoneCase(1)))
		require.NoError(t, m.Add(ctx, headphones(4)))

		items := m.Items()
		require.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, int64(2), items[1].ID)
	})

	t.Run("quantity sums over any add sequence", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		added := 0
		for _, q := range []int{3, 1, 7, 2} {
			require.NoError(t, m.Add(ctx, headphones(q)))
			added += q
		}

		items := m.Items()
		require.Len(t, items, 1)
		assert.Equal(t, added, items[0].Quantity)
		assert.Equal(t, added, m.Count())
	})

	t.Run("rejects invalid items", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		assert.ErrorIs(t, m.Add(ctx, cart.Item{ID: 0, Name: "x", Price: 1, Quantity: 1}), cart.ErrInvalidItem)
		assert.ErrorIs(t, m.Add(ctx, cart.Item{ID: 3, Name: "x", Price: 1, Quantity: 0}), cart.ErrInvalidItem)
		assert.ErrorIs(t, m.Add(ctx, cart.Item{ID: 3, Name: "x", Price: -1, Quantity: 1}), cart.ErrInvalidItem)
		assert.Empty(t, m.Items())
	})
}

func TestManager_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("removes only the targeted line", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(3)))
		require.NoError(t, m.Add(ctx, phoneCase(1)))

		m.Remove(ctx, 2)

		items := m.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, 3, m.Count())
	})

	t.Run("cart empties to zero aggregates", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, phoneCase(1)))
		m.Remove(ctx, 2)

		assert.Empty(t, m.Items())
		assert.Equal(t, 0, m.Count())
		assert.Equal(t, 0.0, m.TotalPrice())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(1)))
		m.Remove(ctx, 999)

		assert.Len(t, m.Items(), 1)
	})
}

func TestManager_UpdateQuantity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sets absolute quantity", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(2)))
		m.UpdateQuantity(ctx, 1, 7)

		items := m.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 7, items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(2)))
		m.UpdateQuantity(ctx, 1, 0)

		assert.Empty(t, m.Items())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(2)))
		m.UpdateQuantity(ctx, 1, -5)

		assert.Empty(t, m.Items())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(2)))
		m.UpdateQuantity(ctx, 999, 5)

		items := m.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})
}

func TestManager_Aggregates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty cart", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		assert.Equal(t, 0, m.Count())
		assert.Equal(t, 0.0, m.TotalPrice())
	})

	t.Run("totals over mixed lines", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(2))) // 200
		require.NoError(t, m.Add(ctx, phoneCase(3)))  // 150

		assert.Equal(t, 5, m.Count())
		assert.Equal(t, 350.0, m.TotalPrice())
	})

	t.Run("count drops only by the removed line", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)

		require.NoError(t, m.Add(ctx, headphones(3)))
		require.NoError(t, m.Add(ctx, phoneCase(2)))
		m.Remove(ctx, 2)

		assert.Equal(t, 3, m.Count())
	})
}

func TestManager_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemoryStore()
	m := cart.New(store)

	require.NoError(t, m.Add(ctx, headphones(2)))
	m.Clear(ctx)

	assert.Empty(t, m.Items())
	assert.Equal(t, 0, m.Count())

	// Clearing also persists the empty list.
	raw, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", raw)
}

func TestManager_Restore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round trip across restarts keeps order", func(t *testing.T) {
		t.Parallel()
		store, err := kv.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
		require.NoError(t, err)
		defer store.Close()

		first := cart.New(store)
		require.NoError(t, first.Add(ctx, headphones(2)))
		require.NoError(t, first.Add(ctx, phoneCase(1)))

		second := cart.New(store)
		second.Restore(ctx)

		assert.Equal(t, first.Items(), second.Items())
		assert.Equal(t, 3, second.Count())
		assert.Equal(t, 250.0, second.TotalPrice())
	})

	t.Run("absent record yields empty cart", func(t *testing.T) {
		t.Parallel()
		m := newManager(t)
		m.Restore(ctx)

		assert.Empty(t, m.Items())
	})

	t.Run("corrupt record yields empty cart", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "cart", "[{broken"))

		m := cart.New(store)
		m.Restore(ctx)

		assert.Empty(t, m.Items())
	})

	t.Run("invalid lines are dropped on restore", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "cart",
			`[{"id":1,"name":"ok","price":10,"quantity":2},{"id":2,"name":"bad","price":10,"quantity":0}]`))

		m := cart.New(store)
		m.Restore(ctx)

		items := m.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(1), items[0].ID)
	})
}

func TestManager_WriteThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("every mutation persists the full list", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemoryStore()
		m := cart.New(store)

		require.NoError(t, m.Add(ctx, headphones(2)))

		raw, err := store.Get(ctx, "cart")
		require.NoError(t, err)
		assert.Contains(t, raw, `"quantity":2`)

		m.UpdateQuantity(ctx, 1, 5)
		raw, err = store.Get(ctx, "cart")
		require.NoError(t, err)
		assert.Contains(t, raw, `"quantity":5`)
	})

	t.Run("persistence failure keeps in-memory state", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemoryStore()
		require.NoError(t, store.Close())

		var persistFailures int
		m := cart.New(store, cart.WithPersistErrorHandler(func(err error) {
			persistFailures++
		}))

		require.NoError(t, m.Add(ctx, headphones(2)))

		assert.Equal(t, 2, m.Count())
		assert.Equal(t, 1, persistFailures)
	})
}

func TestNew_PanicsWithoutStore(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		cart.New(nil)
	})
}
