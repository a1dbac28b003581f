// tinylfu.go: windowed TinyLFU frequency oracle
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package s3lfu

import "sync/atomic"

// windowMultiplier sets the aging window as a multiple of capacity,
// matching estimator.rs's TinyLFU::window_limit = cache_size * 8.
const windowMultiplier = 8

// oracle is the TinyLFU frequency estimator: a sketch plus a windowed
// aging trigger. It knows nothing about entries, queues or weights — it
// only answers "how often have I seen this key" and ages itself down
// periodically so that answer reflects recent traffic.
type oracle struct {
	sk          *sketch
	windowCount atomic.Uint64
	windowLimit uint64
}

func newOracle(capacity int) *oracle {
	limit := uint64(capacity) * windowMultiplier
	if limit == 0 {
		limit = windowMultiplier
	}
	return &oracle{
		sk:          newSketch(capacity),
		windowLimit: limit,
	}
}

// observe records an access to fp and returns its updated frequency
// estimate. The whole sketch is periodically aged by halving, so
// frequency reflects recent behavior rather than a lifetime total. The
// aging check compares the count *before* this observation against
// windowLimit, so aging fires on the observation after the one that
// brings the window up to the limit (with windowLimit 8, the 9th).
func (o *oracle) observe(fp Fingerprint) uint8 {
	prev := o.windowCount.Add(1) - 1
	if prev >= o.windowLimit {
		o.windowCount.Store(0)
		o.sk.age(1)
	}
	return o.sk.increment(fp)
}

// frequency reports fp's current estimate without recording an access.
func (o *oracle) frequency(fp Fingerprint) uint8 {
	return o.sk.estimate(fp)
}

// admit decides whether a candidate should displace a victim: the
// comparison is strict, not >=, so a victim that is at least as frequent
// as the candidate keeps its place.
func admit(candidateFreq, victimFreq uint8) bool {
	return victimFreq < candidateFreq
}
