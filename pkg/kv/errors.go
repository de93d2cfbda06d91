package kv

import "errors"

var (
	// ErrKeyNotFound indicates the requested key is absent from the store.
	ErrKeyNotFound = errors.New("kv.key_not_found")

	// ErrEmptyKey indicates an empty key was passed to a store operation.
	ErrEmptyKey = errors.New("kv.empty_key")

	// ErrStoreClosed indicates an operation on a closed store.
	ErrStoreClosed = errors.New("kv.store_closed")
)
