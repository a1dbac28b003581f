// Package s3lfu provides a fixed-capacity, in-process, thread-safe cache
// combining a Count-Min Sketch frequency estimator (TinyLFU) with an
// S3-FIFO admission and eviction policy.
//
// # Overview
//
// Unlike a plain LRU or a single FIFO, s3lfu tracks how often a key has
// been seen rather than only how recently, and uses that frequency
// estimate as an admission filter: when making room for a new key evicts
// entries, the new key is admitted at its requested weight only if it has
// been seen more often than the first evicted entry; otherwise it is
// still admitted, but takes over that entry's weight. Scan resistance
// comes from the queues: keys seen once leave through Small, while keys
// accessed again are promoted into Main, out of a one-off sweep's way.
//
// The eviction policy itself is S3-FIFO (https://s3fifo.com/): two plain
// FIFO queues, Small (about 10% of the weight budget) and Main (the
// rest). New entries always enter Small. An entry accessed again at least
// once while sitting in Small is promoted into Main instead of evicted; an
// entry that reaches the head of Main keeps getting one more pass per
// remaining use before it's finally evicted. No entry is ever sorted,
// rehashed, or moved on every access the way an LRU list is — the FIFO
// order plus the per-entry use counter does the work a recency list
// would otherwise do.
//
// # Features
//
//   - Count-Min Sketch frequency oracle with windowed aging, so frequency
//     reflects recent traffic rather than a lifetime total
//   - S3-FIFO admission/eviction: O(1) amortized Get and Put
//   - Weighted entries: callers assign a weight at admission time; the
//     cache tracks a combined weight budget rather than a plain entry
//     count
//   - Type-safe generics: Cache[T any]
//   - Structured configuration errors via go-errors
//   - Pluggable Logger and MetricsCollector hooks, both zero-cost by
//     default
//
// # Quick Start
//
//	import "github.com/agilira/s3lfu"
//
//	cache, err := s3lfu.New[string](s3lfu.Config{
//	    Capacity:         10_000,
//	    TotalWeightLimit: 10_000,
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	cache.Put("user:123", 1, "alice")
//	value, found := cache.Get("user:123")
//
// # Concurrency Model
//
// Get takes a read lock only long enough to find the entry; its use
// counter is bumped with a CAS loop afterward, so concurrent Gets never
// block each other. Put and any eviction it triggers run under the write
// lock, since both FIFO queues and the lookup table are mutated together.
// The frequency sketch's counters and the weight ledger are plain atomics
// independent of that lock.
//
// # Non-goals
//
// s3lfu does not provide TTL/expiry, durability, cross-process
// distribution, or adaptive resizing. It assumes a fixed capacity and
// fixed per-entry weight decided once, at admission time.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package s3lfu

// Version of the s3lfu cache library.
const Version = "v0.1.0-dev"
