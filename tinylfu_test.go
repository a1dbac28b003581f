// tinylfu_test.go: unit tests for the TinyLFU oracle
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package s3lfu

import "testing"

func TestOracleObserveIncreasesFrequency(t *testing.T) {
	o := newOracle(100)
	fp := fingerprint("k")

	if got := o.frequency(fp); got != 0 {
		t.Fatalf("frequency before any observe = %d, want 0", got)
	}

	o.observe(fp)
	if got := o.frequency(fp); got == 0 {
		t.Errorf("frequency after observe = %d, want > 0", got)
	}
}

func TestOracleAgesAfterWindow(t *testing.T) {
	o := newOracle(2) // windowLimit = 16
	fp := fingerprint("k")

	for i := 0; i < 10; i++ {
		o.observe(fp)
	}
	before := o.frequency(fp)

	for i := 0; i < int(o.windowLimit); i++ {
		o.observe(fingerprint("filler"))
	}

	after := o.frequency(fp)
	if after > before {
		t.Errorf("frequency after aging window = %d, want <= %d", after, before)
	}
}

func TestAdmitPrefersHigherFrequency(t *testing.T) {
	if !admit(5, 3) {
		t.Error("admit(5, 3) = false, want true: candidate strictly more frequent should win")
	}
}

func TestAdmitVictimWinsTies(t *testing.T) {
	if admit(3, 3) {
		t.Error("admit(3, 3) = true, want false: ties favor the incumbent victim")
	}
}

func TestAdmitVictimWinsWhenMoreFrequent(t *testing.T) {
	if admit(2, 5) {
		t.Error("admit(2, 5) = true, want false: candidate less frequent than victim should lose")
	}
}
