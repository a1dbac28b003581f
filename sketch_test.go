// sketch_test.go: unit tests for the Count-Min Sketch
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package s3lfu

import "testing"

func TestSketchDimensions(t *testing.T) {
	w, d := sketchDimensions(1_000_000, 1.0/1_000_000, 1.0/1_000_000)
	if w < 16 {
		t.Errorf("w = %d, want >= 16", w)
	}
	if d != 20 {
		t.Errorf("d = %d, want 20 for items=1,000,000 with rate=1/items", d)
	}
}

func TestNewSketchDerivesFailureRateFromItems(t *testing.T) {
	// newSketch must derive failureRate from 1/capacity like errorRate,
	// not a fixed constant: otherwise d stops scaling with capacity.
	s := newSketch(1_000_000)
	if got := len(s.seeds); got != 20 {
		t.Errorf("newSketch(1_000_000) has d = %d rows, want 20", got)
	}
}

func TestSketchEstimateStartsAtZero(t *testing.T) {
	s := newSketch(100)
	if got := s.estimate(fingerprint("missing")); got != 0 {
		t.Errorf("estimate on unseen key = %d, want 0", got)
	}
}

func TestSketchIncrementMonotonic(t *testing.T) {
	s := newSketch(100)
	fp := fingerprint("hot")

	var last uint8
	for i := 0; i < 10; i++ {
		got := s.increment(fp)
		if got < last {
			t.Fatalf("increment returned %d after previous %d, estimate must not decrease", got, last)
		}
		last = got
	}

	if got := s.estimate(fp); got != last {
		t.Errorf("estimate() = %d after increments, want %d", got, last)
	}
}

func TestSketchSaturates(t *testing.T) {
	s := newSketch(16)
	fp := fingerprint("k")
	for i := 0; i < 1000; i++ {
		s.increment(fp)
	}
	if got := s.estimate(fp); got != counterMax {
		t.Errorf("estimate() = %d after 1000 increments, want saturated at %d", got, counterMax)
	}
}

func TestSketchAgeHalves(t *testing.T) {
	s := newSketch(16)
	fp := fingerprint("k")
	for i := 0; i < 10; i++ {
		s.increment(fp)
	}
	before := s.estimate(fp)
	s.age(1)
	after := s.estimate(fp)

	if after > before/2+1 {
		t.Errorf("estimate() after age(1) = %d, want roughly half of %d", after, before)
	}
}

func TestSketchDoesNotConflateUnrelatedKeys(t *testing.T) {
	s := newSketch(1000)
	hot := fingerprint("hot")
	for i := 0; i < 50; i++ {
		s.increment(hot)
	}
	if got := s.estimate(fingerprint("cold")); got == s.estimate(hot) {
		t.Errorf("cold key estimate (%d) collided with hot key estimate, sketch too small for this test", got)
	}
}
