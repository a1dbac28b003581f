// cache.go: the public cache façade — hash table wiring over C1-C4
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package s3lfu

import "sync"

// Cache is a fixed-capacity, in-process cache combining a Count-Min
// Sketch frequency estimator with an S3-FIFO admission/eviction policy.
// All methods are safe for concurrent use.
type Cache[T any] struct {
	mu      sync.RWMutex
	table   map[Fingerprint]*entry[T]
	queues  *queues[T]
	metrics MetricsCollector
}

// New builds a Cache per cfg. Capacity and TotalWeightLimit have no safe
// non-zero default: a cache silently "working" at a capacity the caller
// never asked for is worse than a constructor error.
func New[T any](cfg Config) (*Cache[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Cache[T]{
		table:   make(map[Fingerprint]*entry[T], cfg.Capacity),
		queues:  newQueues[T](cfg.Capacity, cfg.TotalWeightLimit, cfg.Logger, cfg.TimeProvider),
		metrics: cfg.MetricsCollector,
	}, nil
}

// Get looks up key and, on a hit, bumps its use count. The read lock is
// held only long enough to find the entry; uses is bumped via its own
// atomic, so the lock is never escalated to a write lock on a hit.
func (c *Cache[T]) Get(key string) (value T, found bool) {
	fp := fingerprint(key)

	c.mu.RLock()
	e, ok := c.table[fp]
	c.mu.RUnlock()

	if !ok {
		c.metrics.RecordGet(false)
		var zero T
		return zero, false
	}

	e.incrUses()
	c.metrics.RecordGet(true)
	return e.data, true
}

// Put admits key with the given weight and value. If key is already
// present, this only bumps its use count — it never updates the stored
// value or weight of an existing entry. Admission and any resulting
// eviction happen under the write lock, since both queues and the hash
// table are mutated together.
func (c *Cache[T]) Put(key string, weight uint16, value T) {
	fp := fingerprint(key)

	c.mu.Lock()
	victims := c.queues.admit(c.table, fp, weight, value)
	c.mu.Unlock()

	c.metrics.RecordPut()
	for range victims {
		c.metrics.RecordEviction()
	}
}

// Len returns the current number of entries held across both queues.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.table)
}
