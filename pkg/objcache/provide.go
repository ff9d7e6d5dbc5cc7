/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package objcache

// Creates and returns new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param, panics if size is not positive.
// Optional onEvicted cb is called when an entry leaves the cache, evicted by
// capacity or explicitly removed. The cb runs under the cache lock and must
// not call back into the cache.
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return newCache[K, V](size, onEvicted)
}
