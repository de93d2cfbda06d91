package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/vantrang/shopkit/pkg/kv"
	"github.com/vantrang/shopkit/pkg/logger"
)

// Manager is the authoritative owner of the cart contents. It keeps an
// ordered list of lines in memory, writes the full list through to a
// kv.Store after every mutation, and exposes the derived aggregates the
// badge and checkout views need.
//
// Persistence failures never fail a mutation: the in-memory list stays the
// source of truth for the process lifetime and the failed write is logged
// and reported to the optional persist-error handler.
type Manager struct {
	store      kv.Store
	config     Config
	log        *slog.Logger
	persistErr func(err error)

	mu    sync.RWMutex
	items []Item
}

// New creates a cart manager backed by store.
// Panics when store is nil; running without persistence is a programming
// error, not a runtime condition.
func New(store kv.Store, opts ...Option) *Manager {
	if store == nil {
		panic("cart: store is required")
	}

	m := &Manager{
		store:  store,
		config: DefaultConfig(),
		log:    slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Restore loads the persisted line list. An absent or unparsable record
// yields an empty cart, never an error.
func (m *Manager) Restore(ctx context.Context) {
	raw, err := m.store.Get(ctx, m.config.StorageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			m.log.ErrorContext(ctx, "read persisted cart", logger.Error(err))
		}
		return
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		m.log.WarnContext(ctx, "persisted cart corrupt, starting empty",
			logger.Error(err))
		return
	}

	// Lines that could never have entered through Add are dropped rather
	// than resurrected from a tampered or stale record.
	restored := make([]Item, 0, len(items))
	for _, item := range items {
		if item.valid() {
			restored = append(restored, item)
		}
	}

	m.mu.Lock()
	m.items = restored
	m.mu.Unlock()
}

// Add puts item in the cart. A line with the same product id absorbs the
// added quantity (merge semantics); otherwise the item is appended as a new
// line, preserving the order of existing lines.
func (m *Manager) Add(ctx context.Context, item Item) error {
	if !item.valid() {
		return ErrInvalidItem
	}

	m.mu.Lock()
	merged := false
	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		m.items = append(m.items, item)
	}
	m.mu.Unlock()

	m.persist(ctx)
	return nil
}

// Remove deletes the line with the given product id. Removing an absent id
// is a no-op.
func (m *Manager) Remove(ctx context.Context, id int64) {
	m.mu.Lock()
	before := len(m.items)
	m.items = slices.DeleteFunc(m.items, func(item Item) bool {
		return item.ID == id
	})
	changed := len(m.items) != before
	m.mu.Unlock()

	if changed {
		m.persist(ctx)
	}
}

// UpdateQuantity sets the absolute quantity of the line with the given id.
// A quantity of zero or less removes the line entirely. Updating an absent
// id is a no-op.
func (m *Manager) UpdateQuantity(ctx context.Context, id int64, quantity int) {
	if quantity <= 0 {
		m.Remove(ctx, id)
		return
	}

	m.mu.Lock()
	changed := false
	for i := range m.items {
		if m.items[i].ID == id {
			changed = m.items[i].Quantity != quantity
			m.items[i].Quantity = quantity
			break
		}
	}
	m.mu.Unlock()

	if changed {
		m.persist(ctx)
	}
}

// Clear empties the cart, e.g. after checkout completion.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()

	m.persist(ctx)
}

// Items returns a copy of the current lines in insertion order.
func (m *Manager) Items() []Item {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.items)
}

// Count returns the sum of quantities over all lines, recomputed on read.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, item := range m.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all lines.
func (m *Manager) TotalPrice() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0.0
	for _, item := range m.items {
		total += item.Subtotal()
	}
	return total
}

// persist writes the full serialized list through to the store. Write
// failures are soft: logged, reported, and otherwise ignored.
func (m *Manager) persist(ctx context.Context) {
	m.mu.RLock()
	items := m.items
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	m.mu.RUnlock()

	if err != nil {
		m.log.ErrorContext(ctx, "marshal cart", logger.Error(err))
		return
	}

	if err := m.store.Set(ctx, m.config.StorageKey, string(data)); err != nil {
		m.log.ErrorContext(ctx, "persist cart",
			logger.Key(m.config.StorageKey),
			logger.Error(err),
		)
		if m.persistErr != nil {
			m.persistErr(err)
		}
	}
}
