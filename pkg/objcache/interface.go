/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package objcache

// Bounded cache of constructed objects with LRU eviction.
//
// Every operation, composite ones included, runs under one lock: the
// key→value mapping and the recency order are never observed mid-mutation.
type ICache[K comparable, V any] interface {
	// Puts value with key and makes the key the most recently used.
	// Overwriting an existing key never grows the cache and never evicts.
	// A new key at capacity evicts the least recently used entry, exactly one.
	Put(key K, value V)

	// Gets value by key and makes the key the most recently used.
	// Returns true and value if key exists, false and zero value otherwise.
	Get(key K) (value V, ok bool)

	// Contains reports whether key exists. Recency order is not touched.
	Contains(key K) bool

	// GetOrInsert returns the resident value when key exists (inserted ==
	// false, recency touched) or inserts value and returns that very value
	// (inserted == true). Atomic: no other operation interleaves.
	GetOrInsert(key K, value V) (actual V, inserted bool)

	// Remove deletes key from the cache and returns the removed value.
	// Returns false and zero value if key does not exist.
	Remove(key K) (value V, ok bool)

	// Len returns the number of cached entries, never above the cache size.
	Len() int

	// Keys returns a snapshot of the cached keys, least recently used first.
	Keys() []K
}
