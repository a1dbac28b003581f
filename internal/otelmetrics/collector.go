// Package otelmetrics implements s3lfu.MetricsCollector using
// OpenTelemetry, giving hit/miss ratio and eviction counts on any OTEL
// backend (Prometheus, DataDog, Grafana, ...).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otelmetrics

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/agilira/s3lfu"
)

// NewDefaultProvider builds a MeterProvider with no configured exporter,
// suitable for local development or tests: readings accumulate but go
// nowhere until a real reader (Prometheus, OTLP, ...) is attached with
// sdkmetric.WithReader. Production callers typically build their own
// provider instead and pass it to New.
func NewDefaultProvider() *sdkmetric.MeterProvider {
	return sdkmetric.NewMeterProvider()
}

// Collector implements s3lfu.MetricsCollector using OpenTelemetry
// counters. It exposes:
//
//   - s3lfu_get_hits_total / s3lfu_get_misses_total
//   - s3lfu_puts_total
//   - s3lfu_evictions_total
type Collector struct {
	hits      metric.Int64Counter
	misses    metric.Int64Counter
	puts      metric.Int64Counter
	evictions metric.Int64Counter
}

// Options configures Collector.
type Options struct {
	// MeterName names the OpenTelemetry meter. Default:
	// "github.com/agilira/s3lfu".
	MeterName string
}

// Option is a functional option for New.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing
// metrics from multiple cache instances.
func WithMeterName(name string) Option {
	return func(o *Options) { o.MeterName = name }
}

// New creates a Collector backed by provider.
func New(provider metric.MeterProvider, opts ...Option) (*Collector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/agilira/s3lfu"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	c := &Collector{}

	var err error
	if c.hits, err = meter.Int64Counter("s3lfu_get_hits_total",
		metric.WithDescription("Total number of cache hits")); err != nil {
		return nil, err
	}
	if c.misses, err = meter.Int64Counter("s3lfu_get_misses_total",
		metric.WithDescription("Total number of cache misses")); err != nil {
		return nil, err
	}
	if c.puts, err = meter.Int64Counter("s3lfu_puts_total",
		metric.WithDescription("Total number of Put calls")); err != nil {
		return nil, err
	}
	if c.evictions, err = meter.Int64Counter("s3lfu_evictions_total",
		metric.WithDescription("Total number of entries evicted")); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Collector) RecordGet(hit bool) {
	ctx := context.Background()
	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

func (c *Collector) RecordPut() {
	c.puts.Add(context.Background(), 1)
}

func (c *Collector) RecordEviction() {
	c.evictions.Add(context.Background(), 1)
}

var _ s3lfu.MetricsCollector = (*Collector)(nil)
