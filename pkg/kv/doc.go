// Package kv provides a durable string key-value store abstraction used to
// persist client state (auth token, user profile, cart contents) across
// process restarts.
//
// The package is storage-agnostic: any backend that satisfies the Store
// interface can be plugged into the session and cart managers. Four
// implementations ship out of the box:
//
//   - MemoryStore – concurrent in-memory map, for tests and ephemeral use
//   - FileStore   – single JSON file with atomic writes, the default for
//     on-device persistence
//   - RedisStore  – go-redis backed, for server-assisted clients
//   - SQLiteStore – single-table SQLite database
//
// # Usage
//
//	store, err := kv.NewFileStore("/data/shopkit.json")
//	if err != nil {
//	    // handle error
//	}
//	defer store.Close()
//
//	if err := store.Set(ctx, "access_token", token); err != nil {
//	    // handle error
//	}
//
// Absent keys are reported with ErrKeyNotFound:
//
//	v, err := store.Get(ctx, "cart")
//	if errors.Is(err, kv.ErrKeyNotFound) {
//	    // start from empty state
//	}
//
// Remove is idempotent: removing a key that does not exist is not an error.
package kv
