// sketch.go: Count-Min Sketch frequency estimator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package s3lfu

import (
	"math"
	"sync/atomic"
)

// counterMax is the saturation point of each 8-bit counter.
const counterMax = math.MaxUint8

// sketch is a Count-Min Sketch with d rows of w 8-bit saturating counters,
// one independently seeded hash per row. estimate(key) is the minimum
// count across rows; increment(key) bumps every row's counter for key and
// returns the post-increment estimate.
type sketch struct {
	rows  [][]uint32 // one uint32 per counter; only the low 8 bits are used
	seeds []uint64
	w     uint64
}

// sketchDimensions computes (w, d) for an expected number of distinct
// items, targeting errorRate of total count and failureRate probability of
// exceeding it: w = e/errorRate, d = ln(1/failureRate)/ln(2).
func sketchDimensions(items int, errorRate, failureRate float64) (w, d int) {
	w = int(math.Ceil(math.E / errorRate))
	if w < 16 {
		w = 16
	}
	d = int(math.Ceil(math.Log(1/failureRate) / math.Log(2)))
	if d < 2 {
		d = 2
	}
	return w, d
}

// newSketch builds a sketch sized for the given capacity, deriving both
// the error rate and the failure rate from 1/items so d scales with
// capacity the same way w does (items=1,000,000 yields w≈2,718,282,
// d=20).
func newSketch(capacity int) *sketch {
	items := capacity
	if items < 1 {
		items = 1
	}
	rate := 1.0 / float64(items)
	w, d := sketchDimensions(items, rate, rate)
	return newSketchWithDimensions(w, d, uint64(items))
}

func newSketchWithDimensions(w, d int, baseSeed uint64) *sketch {
	s := &sketch{
		rows:  make([][]uint32, d),
		seeds: make([]uint64, d),
		w:     uint64(w),
	}
	for i := 0; i < d; i++ {
		s.rows[i] = make([]uint32, w)
		s.seeds[i] = rowSeed(baseSeed, i)
	}
	return s
}

// estimate returns the minimum counter value for fp across all rows.
func (s *sketch) estimate(fp Fingerprint) uint8 {
	min := uint32(counterMax)
	for i, seed := range s.seeds {
		col := rowHash(fp, seed) % s.w
		v := atomic.LoadUint32(&s.rows[i][col])
		if v < min {
			min = v
		}
	}
	return uint8(min)
}

// increment bumps fp's counter in every row, saturating at counterMax, and
// returns the resulting estimate (the minimum across rows after the bump).
func (s *sketch) increment(fp Fingerprint) uint8 {
	min := uint32(counterMax)
	for i, seed := range s.seeds {
		col := rowHash(fp, seed) % s.w
		v := incrementSaturating(&s.rows[i][col], counterMax)
		if v < min {
			min = v
		}
	}
	return uint8(min)
}

// incrementSaturating CAS-increments *addr by one, capped at max, and
// returns the post-increment value.
func incrementSaturating(addr *uint32, max uint32) uint32 {
	for {
		old := atomic.LoadUint32(addr)
		if old >= max {
			return old
		}
		if atomic.CompareAndSwapUint32(addr, old, old+1) {
			return old + 1
		}
	}
}

// age halves every counter in every row, shifting estimates down so recent
// activity outweighs historical activity. shift is almost always 1.
func (s *sketch) age(shift uint32) {
	for _, row := range s.rows {
		for i := range row {
			for {
				old := atomic.LoadUint32(&row[i])
				next := old >> shift
				if atomic.CompareAndSwapUint32(&row[i], old, next) {
					break
				}
			}
		}
	}
}
