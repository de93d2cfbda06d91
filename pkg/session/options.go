package session

import "log/slog"

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithResolver sets the remote profile resolver used when a persisted
// profile is missing or corrupt. Without one the manager falls back to the
// placeholder profile immediately.
func WithResolver(resolver ProfileResolver) Option {
	return func(m *Manager) {
		m.resolver = resolver
	}
}

// WithLogger sets the logger used for soft-failure diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithPlaceholder overrides the fallback profile installed when the real
// one cannot be resolved.
func WithPlaceholder(user User) Option {
	return func(m *Manager) {
		m.placeholder = user
	}
}

// WithPersistErrorHandler registers a callback invoked whenever a
// write-through persistence operation fails. Mutations still commit in
// memory; the callback makes the failed write observable.
func WithPersistErrorHandler(fn func(key string, err error)) Option {
	return func(m *Manager) {
		m.persistErr = fn
	}
}
