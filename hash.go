// hash.go: keyed 64-bit hashing for fingerprints and sketch rows
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package s3lfu

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is the 64-bit digest a cache key is reduced to once, at the
// boundary, and operated on everywhere after: the hash table, both FIFO
// queues and the sketch all key off Fingerprint rather than the original
// string.
type Fingerprint uint64

// fingerprint hashes key into a Fingerprint.
func fingerprint(key string) Fingerprint {
	return Fingerprint(xxhash.Sum64String(key))
}

// rowSeed derives the keyed seed for sketch row i from the engine-wide base
// seed. Each row needs an independent hash family; deriving them from one
// seed avoids storing d separate random values while keeping rows
// uncorrelated enough for Count-Min Sketch's guarantees.
func rowSeed(base uint64, row int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(row))
	return xxhash.Sum64(buf[:]) ^ base
}

// rowHash hashes a fingerprint against a row's seed to produce that row's
// table index before reduction modulo the row width. Avoids allocating an xxhash.Digest per call
// by hashing the seed and fingerprint packed into one 16-byte buffer.
func rowHash(fp Fingerprint, seed uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], seed)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(fp))
	return xxhash.Sum64(buf[:])
}
