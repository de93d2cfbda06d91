package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/vantrang/shopkit/pkg/kv"
	"github.com/vantrang/shopkit/pkg/logger"
)

// Manager is the authoritative source of "who is logged in". It owns the
// bearer token and profile record, keeps both synchronized to a kv.Store,
// and reconciles a missing or corrupt persisted profile against the remote
// resolver.
//
// Expected failure modes (storage, network) never escape the manager:
// persistence errors are logged and the in-memory state stays committed,
// and a failed profile resolution degrades to the placeholder profile.
type Manager struct {
	store       kv.Store
	resolver    ProfileResolver
	config      Config
	log         *slog.Logger
	placeholder User
	persistErr  func(key string, err error)

	mu      sync.RWMutex
	token   string
	user    *User
	loading atomic.Bool
}

// New creates a session manager backed by store.
// Panics when store is nil; running without persistence is a programming
// error, not a runtime condition.
func New(store kv.Store, opts ...Option) *Manager {
	if store == nil {
		panic("session: store is required")
	}

	m := &Manager{
		store:       store,
		config:      DefaultConfig(),
		log:         slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		placeholder: PlaceholderUser(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Restore hydrates the session from persisted state. It must complete
// before any consumer reads the session; IsLoading reports true while the
// restore is in flight.
//
// A persisted token with a missing or corrupt profile triggers a remote
// resolve; when that fails too, the placeholder profile is installed so the
// session still presents as authenticated.
func (m *Manager) Restore(ctx context.Context) {
	m.loading.Store(true)
	defer m.loading.Store(false)

	token, err := m.store.Get(ctx, m.config.TokenKey)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			m.log.ErrorContext(ctx, "read persisted token", logger.Error(err))
		}
		return
	}
	if token == "" {
		return
	}

	if raw, err := m.store.Get(ctx, m.config.UserDataKey); err == nil {
		var user User
		if jsonErr := json.Unmarshal([]byte(raw), &user); jsonErr == nil && user.Valid() {
			m.adopt(token, user)
			return
		}
		m.log.WarnContext(ctx, "persisted profile corrupt, resolving remotely",
			logger.Key(m.config.UserDataKey))
	}

	m.resolveOrPlaceholder(ctx, token)
}

// Login establishes an authenticated session for token. The token is
// persisted unconditionally. When user is nil the profile is resolved
// remotely, falling back to the placeholder. Calling Login twice with the
// same token yields the same end state.
func (m *Manager) Login(ctx context.Context, token string, user *User) {
	m.persist(ctx, m.config.TokenKey, token)

	if user != nil {
		m.adoptAndPersist(ctx, token, *user)
		return
	}

	m.resolveOrPlaceholder(ctx, token)
}

// Logout clears the session and removes all persisted credentials. It never
// fails: removal errors are logged and the in-memory state is cleared
// regardless.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Remove(ctx, m.config.TokenKey); err != nil {
		m.log.ErrorContext(ctx, "remove persisted token", logger.Error(err))
	}
	if err := m.store.Remove(ctx, m.config.UserDataKey); err != nil {
		m.log.ErrorContext(ctx, "remove persisted profile", logger.Error(err))
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
}

// UpdateUser replaces the profile wholesale, in memory and in persistence.
// The token is untouched. Calling it on an unauthenticated session is
// ignored: a profile may not exist without a token.
func (m *Manager) UpdateUser(ctx context.Context, user User) {
	m.mu.Lock()
	if m.token == "" {
		m.mu.Unlock()
		m.log.WarnContext(ctx, "update user ignored: no active session")
		return
	}
	m.user = &user
	m.mu.Unlock()

	m.persistUser(ctx, user)
}

// Token returns the current bearer token, or empty when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns a copy of the current profile, or nil when unauthenticated.
func (m *Manager) User() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// IsAuthenticated reports whether a profile is present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// IsLoading reports whether Restore is still in flight.
func (m *Manager) IsLoading() bool {
	return m.loading.Load()
}

// resolveOrPlaceholder resolves the profile behind token, installing the
// placeholder on any failure. Resolution errors never propagate.
func (m *Manager) resolveOrPlaceholder(ctx context.Context, token string) {
	if m.resolver != nil {
		user, err := m.resolver.ResolveProfile(ctx, token)
		if err == nil && user.Valid() {
			m.adoptAndPersist(ctx, token, user)
			return
		}
		m.log.WarnContext(ctx, "profile resolution failed, installing placeholder",
			logger.Error(err))
	}

	m.adoptAndPersist(ctx, token, m.placeholder)
}

// adopt installs token and user in memory.
func (m *Manager) adopt(token string, user User) {
	m.mu.Lock()
	m.token = token
	m.user = &user
	m.mu.Unlock()
}

// adoptAndPersist installs the state in memory and writes the profile
// through to persistence.
func (m *Manager) adoptAndPersist(ctx context.Context, token string, user User) {
	m.adopt(token, user)
	m.persistUser(ctx, user)
}

// persistUser serializes the profile and writes it through. Marshal errors
// cannot happen for User but are handled for symmetry.
func (m *Manager) persistUser(ctx context.Context, user User) {
	data, err := json.Marshal(user)
	if err != nil {
		m.log.ErrorContext(ctx, "marshal profile", logger.Error(err))
		return
	}
	m.persist(ctx, m.config.UserDataKey, string(data))
}

// persist performs a soft write-through: a failed write is logged and
// reported to the persist-error handler, but never fails the mutation.
func (m *Manager) persist(ctx context.Context, key, value string) {
	if err := m.store.Set(ctx, key, value); err != nil {
		m.log.ErrorContext(ctx, "persist session state",
			logger.Key(key),
			logger.Error(err),
		)
		if m.persistErr != nil {
			m.persistErr(key, err)
		}
	}
}
