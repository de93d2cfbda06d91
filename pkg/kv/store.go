package kv

import "context"

// Store defines the interface for durable string key-value persistence.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value stored under key.
	// Removing an absent key is a no-op, not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
