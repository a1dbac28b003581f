// s3lfu_fuzz_test.go: property-based fuzzing of the weight ledger and
// uses-bound invariants
//
// FUZZING PHILOSOPHY:
// Rather than fuzz individual functions in isolation, we replay the raw
// fuzz input as a sequence of Put/Get operations against a live cache and
// check, after every operation, that these properties always hold:
//   - S_w + M_w never exceeds TotalWeightLimit by more than the largest
//     weight ever admitted (a single admission may transiently overrun
//     the ledger by its own weight before the next eviction pays it back)
//   - no entry's use counter ever exceeds usesCap
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package s3lfu

import (
	"strconv"
	"testing"
)

func FuzzCacheInvariants(f *testing.F) {
	f.Add([]byte{0, 1, 2, 1, 1, 3, 2, 2, 2, 0})
	f.Add([]byte{255, 254, 253, 0, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, ops []byte) {
		if len(ops) == 0 {
			t.Skip()
		}

		c, err := New[int](Config{Capacity: 32, TotalWeightLimit: 32})
		if err != nil {
			t.Fatal(err)
		}

		for i, b := range ops {
			key := strconv.Itoa(int(b) % 16) // small keyspace, forces churn
			if i%3 == 0 {
				c.Get(key)
			} else {
				c.Put(key, 1, i)
			}

			checkWeightLedger(t, c)
			checkUsesBound(t, c)
		}
	})
}

// maxWeightEverPut is the largest weight passed to Put anywhere in this
// fuzz target, bounding the transient overrun checkWeightLedger allows.
const maxWeightEverPut = 1

func checkWeightLedger(t *testing.T, c *Cache[int]) {
	t.Helper()
	total := c.queues.smallWeight.Load() + c.queues.mainWeight.Load()
	if total > c.queues.totalWeightLimit+maxWeightEverPut {
		t.Fatalf("S_w+M_w = %d, exceeds TotalWeightLimit %d by more than %d", total, c.queues.totalWeightLimit, maxWeightEverPut)
	}
}

func checkUsesBound(t *testing.T, c *Cache[int]) {
	t.Helper()
	c.mu.RLock()
	defer c.mu.RUnlock()
	for fp, e := range c.table {
		if got := e.usesCount(); got > usesCap {
			t.Fatalf("entry %v uses = %d, exceeds usesCap %d", fp, got, usesCap)
		}
	}
}
