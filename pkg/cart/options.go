package cart

import "log/slog"

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
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

// WithPersistErrorHandler registers a callback invoked whenever a
// write-through persistence operation fails. Mutations still commit in
// memory; the callback makes the failed write observable.
func WithPersistErrorHandler(fn func(err error)) Option {
	return func(m *Manager) {
		m.persistErr = fn
	}
}
