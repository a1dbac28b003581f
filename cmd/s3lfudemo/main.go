// cmd/s3lfudemo/main.go: replay a synthetic or file-based key trace
// through a cache and report request count, hits, hit ratio and final
// entry count. Eviction counts are not reported.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	flashflags "github.com/agilira/flash-flags"

	"github.com/agilira/s3lfu"
)

func main() {
	fs := flashflags.New("s3lfudemo")
	capacity := fs.Int("capacity", 10_000, "cache capacity (distinct keys)")
	weightLimit := fs.Int("weight-limit", 10_000, "total weight budget")
	requests := fs.Int("requests", 1_000_000, "number of synthetic requests to replay")
	keyspace := fs.Int("keyspace", 100_000, "number of distinct keys in the synthetic trace")
	trace := fs.String("trace", "", "path to a file of newline-separated keys; overrides the synthetic generator")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "s3lfudemo:", err)
		os.Exit(1)
	}

	cache, err := s3lfu.New[struct{}](s3lfu.Config{
		Capacity:         *capacity,
		TotalWeightLimit: uint64(*weightLimit),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "s3lfudemo:", err)
		os.Exit(1)
	}

	var hits, total int

	observe := func(key string) {
		total++
		if _, found := cache.Get(key); found {
			hits++
			return
		}
		cache.Put(key, 1, struct{}{})
	}

	if path := *trace; path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "s3lfudemo:", err)
			os.Exit(1)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			observe(scanner.Text())
		}
	} else {
		// Zipfian-ish synthetic trace: most requests land on a small
		// head of the keyspace, exercising the frequency oracle the
		// way a cache-friendly production workload would.
		rng := rand.New(rand.NewSource(1))
		n := uint64(*keyspace)
		zipf := rand.NewZipf(rng, 1.2, 1, n-1)
		for i := 0; i < *requests; i++ {
			observe(strconv.FormatUint(zipf.Uint64(), 10))
		}
	}

	fmt.Printf("requests:  %d\n", total)
	fmt.Printf("hits:      %d\n", hits)
	fmt.Printf("hit ratio: %.2f%%\n", float64(hits)/float64(total)*100)
	fmt.Printf("entries:   %d\n", cache.Len())
}
