/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package objcache

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// LRU cache implemented over the non-locking hashicorp LRU core.
// The single mutex keeps composite operations atomic.
type cache[K comparable, V any] struct {
	lock sync.Mutex
	lru  *simplelru.LRU[K, V]
}

func newCache[K comparable, V any](size int, onEvicted func(K, V)) (c *cache[K, V]) {
	lru, err := simplelru.NewLRU[K, V](size, onEvicted)
	if err != nil {
		panic(err)
	}
	return &cache[K, V]{lru: lru}
}

func (c *cache[K, V]) Put(key K, value V) {
	c.lock.Lock()
	defer c.lock.Unlock()
	_ = c.lru.Add(key, value)
}

func (c *cache[K, V]) Get(key K) (value V, ok bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.lru.Get(key)
}

func (c *cache[K, V]) Contains(key K) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.lru.Contains(key)
}

func (c *cache[K, V]) GetOrInsert(key K, value V) (actual V, inserted bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if stored, ok := c.lru.Get(key); ok {
		return stored, false
	}
	_ = c.lru.Add(key, value)
	return value, true
}

func (c *cache[K, V]) Remove(key K) (value V, ok bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if value, ok = c.lru.Peek(key); ok {
		_ = c.lru.Remove(key)
	}
	return value, ok
}

func (c *cache[K, V]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.lru.Len()
}

func (c *cache[K, V]) Keys() []K {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.lru.Keys()
}
