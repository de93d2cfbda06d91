// Package cache provides a generic, thread-safe LRU cache with O(1) Get,
// Put and Remove. The API client uses it to keep recently viewed products
// in memory so detail screens do not refetch on every focus; capacity-based
// eviction keeps memory bounded on small devices.
//
//	products := cache.NewLRUCache[int64, apiclient.Product](128)
//	products.Put(p.ID, p)
//	if p, ok := products.Get(id); ok {
//	    // serve from cache
//	}
package cache
