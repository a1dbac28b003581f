// config.go: configuration for the S3-FIFO/TinyLFU cache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package s3lfu

import "github.com/agilira/go-timecache"

// Config holds configuration parameters for a Cache.
type Config struct {
	// Capacity is the expected number of distinct entries, used to size
	// the frequency sketch and pre-size the Small/Main queues. Must be
	// > 0 — there is no sane default for how many keys the caller's
	// workload has.
	Capacity int

	// TotalWeightLimit is the combined weight budget across both Small
	// and Main. Must be > 0. If every entry is admitted with weight 1,
	// this behaves like a plain entry-count capacity.
	TotalWeightLimit uint64

	// Logger is used for Debug-level promotion/eviction diagnostics.
	// If nil, NoOpLogger is used.
	Logger Logger

	// TimeProvider stamps the optional eviction log line. If nil, a
	// default implementation backed by go-timecache's cached clock is
	// used.
	TimeProvider TimeProvider

	// MetricsCollector receives get/put/eviction counts. If nil,
	// NoOpMetricsCollector is used (zero overhead).
	MetricsCollector MetricsCollector
}

// Validate normalizes the ambient fields (Logger, TimeProvider,
// MetricsCollector) to their no-op defaults, but returns an error for
// Capacity and TotalWeightLimit instead of silently substituting a
// default: a cache quietly sized differently than the caller asked for
// is a worse failure mode than a constructor error.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return NewErrInvalidCapacity(c.Capacity)
	}

	if c.TotalWeightLimit == 0 {
		return NewErrInvalidWeightLimit(c.TotalWeightLimit)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// systemTimeProvider is the default time provider, backed by
// go-timecache's cached clock. This engine only ever calls it when
// logging an eviction, so the ~121x speedup over time.Now() that
// go-timecache advertises matters less here than it does for a
// TTL-heavy cache — it's still the right default because an injected
// Logger that calls Now() per eviction shouldn't have to care.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
