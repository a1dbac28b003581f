// queue.go: S3-FIFO admission and eviction
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package s3lfu

import "sync/atomic"

// smallQueueShare is the fraction of the total weight budget reserved for
// Small before it starts pushing evictions.
const smallQueueShare = 0.1

// evicted describes an entry removed by the queue manager, handed back to
// the caller (the cache façade), which records one eviction metric per
// entry. The queue manager has already deleted it from the lookup table.
type evicted[T any] struct {
	fp     Fingerprint
	data   T
	weight uint16
}

// queues owns the Small and Main FIFOs plus the weight ledger that bounds
// them jointly. It never touches the lookup table directly except through
// the table argument passed to admit/evictOne — the table itself belongs
// to the cache façade.
type queues[T any] struct {
	small []Fingerprint
	main  []Fingerprint

	smallWeight atomic.Uint64
	mainWeight  atomic.Uint64

	smallWeightLimit uint64
	totalWeightLimit uint64

	oracle *oracle
	logger Logger
	clock  TimeProvider
}

func newQueues[T any](capacity int, totalWeightLimit uint64, logger Logger, clock TimeProvider) *queues[T] {
	smallLimit := uint64(float64(totalWeightLimit)*smallQueueShare) + 1
	return &queues[T]{
		small:            make([]Fingerprint, 0, capacity/10+1),
		main:             make([]Fingerprint, 0, capacity),
		smallWeightLimit: smallLimit,
		totalWeightLimit: totalWeightLimit,
		oracle:           newOracle(capacity),
		logger:           logger,
		clock:            clock,
	}
}

// admit inserts a brand-new key into Small, first evicting as many
// entries as needed to stay within totalWeightLimit. If an eviction
// happened, the admission-filter step compares the candidate's updated
// frequency against the first evicted entry's frequency and only admits
// at its requested weight if the candidate wins; otherwise it is still
// admitted, but with the first evicted entry's weight in place of its
// own. When a single admission evicts more than one entry, only
// the first evicted entry's frequency enters the comparison.
func (q *queues[T]) admit(table map[Fingerprint]*entry[T], fp Fingerprint, weight uint16, data T) []evicted[T] {
	if existing, ok := table[fp]; ok {
		existing.incrUses()
		return nil
	}

	admittedWeight := weight
	victims := q.tryEvict(table)
	if len(victims) > 0 {
		candidateFreq := q.oracle.observe(fp)
		victimFreq := q.oracle.frequency(victims[0].fp)
		if !admit(candidateFreq, victimFreq) {
			admittedWeight = victims[0].weight
		}
	}

	table[fp] = newEntry(data, admittedWeight)
	q.small = append(q.small, fp)
	q.smallWeight.Add(uint64(admittedWeight))
	return victims
}

// tryEvict evicts entries until the ledger is back within budget,
// returning everything it evicted in eviction order. It checks only the
// current ledger, not the entry about to be admitted: an admission is
// allowed to push the ledger transiently over totalWeightLimit by the
// incoming entry's own weight, and the next eviction cycle pays it back.
func (q *queues[T]) tryEvict(table map[Fingerprint]*entry[T]) []evicted[T] {
	var out []evicted[T]
	for q.totalWeightLimit < q.smallWeight.Load()+q.mainWeight.Load() {
		v, ok := q.evictOne(table)
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// evictOne tries Small first once it is over its own share of the
// budget, falling back to Main otherwise.
func (q *queues[T]) evictOne(table map[Fingerprint]*entry[T]) (evicted[T], bool) {
	if q.smallWeight.Load() > q.smallWeightLimit {
		if v, ok := q.evictSmall(table); ok {
			return v, true
		}
	}
	return q.evictMain(table)
}

// evictSmall pops Small's head. An entry accessed again at least once
// since admission (uses > 1) has proven itself and is promoted into Main,
// its weight moving from the Small ledger to the Main ledger, instead of
// being evicted;
// a head pointing at an already-removed key (stale from a prior
// admission's dedup) is skipped silently.
func (q *queues[T]) evictSmall(table map[Fingerprint]*entry[T]) (evicted[T], bool) {
	for {
		fp, ok := popFront(&q.small)
		if !ok {
			return evicted[T]{}, false
		}

		e, present := table[fp]
		if !present {
			continue
		}

		if e.usesCount() > 1 {
			e.promoteToMain()
			q.main = append(q.main, fp)
			q.smallWeight.Add(-uint64(e.weight))
			q.mainWeight.Add(uint64(e.weight))
			q.logger.Debug("s3lfu: promoted small to main", "fingerprint", fp, "uses", e.usesCount())
			continue
		}

		delete(table, fp)
		q.smallWeight.Add(-uint64(e.weight))
		q.logEviction(fp, e, "small")
		return evicted[T]{fp: fp, data: e.data, weight: e.weight}, true
	}
}

// evictMain pops Main's head and gives it one more chance per remaining
// use: an entry whose uses was above zero before the decrement goes back
// to Main's tail; one whose uses was already zero is evicted.
func (q *queues[T]) evictMain(table map[Fingerprint]*entry[T]) (evicted[T], bool) {
	for {
		fp, ok := popFront(&q.main)
		if !ok {
			return evicted[T]{}, false
		}

		e, present := table[fp]
		if !present {
			continue
		}

		if e.decrUses() > 0 {
			q.main = append(q.main, fp)
			continue
		}

		delete(table, fp)
		q.mainWeight.Add(-uint64(e.weight))
		q.logEviction(fp, e, "main")
		return evicted[T]{fp: fp, data: e.data, weight: e.weight}, true
	}
}

func (q *queues[T]) logEviction(fp Fingerprint, e *entry[T], from string) {
	q.logger.Debug("s3lfu: evicted",
		"fingerprint", fp,
		"from", from,
		"final_uses", e.usesCount(),
		"weight", e.weight,
		"at", q.clock.Now(),
	)
}

// popFront removes and returns the head of a FIFO represented as a
// slice. Reports false on an empty queue.
func popFront(q *[]Fingerprint) (Fingerprint, bool) {
	s := *q
	if len(s) == 0 {
		return 0, false
	}
	fp := s[0]
	*q = s[1:]
	return fp, true
}
