// Package instrument decorates a Mutex with Prometheus metrics and
// OpenTelemetry tracing. Locking is delegated to the wrapped implementation
// untouched; the decorator adds observability only.
package instrument

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mirkobrombin/go-mutex/v1/metrics"
	"github.com/mirkobrombin/go-mutex/v1/mutex"
)

var tracer = otel.Tracer("github.com/mirkobrombin/go-mutex/v1/instrument")

// Instrumented wraps a Mutex implementation and records how often and for
// how long it is locked.
type Instrumented[T any] struct {
	inner mutex.Mutex[T]
	name  string

	reg          prometheus.Registerer
	lockCounter  prometheus.Counter
	holdHist     prometheus.Histogram
	traceEnabled bool
}

// Option configures an Instrumented mutex.
type Option[T any] func(*Instrumented[T])

// WithName sets the name reported in metric labels and span attributes.
func WithName[T any](name string) Option[T] {
	return func(m *Instrumented[T]) {
		m.name = name
	}
}

// WithMetrics enables per-instance Prometheus collectors registered on reg.
// Give each instance on the same registry a distinct name via WithName.
func WithMetrics[T any](reg prometheus.Registerer) Option[T] {
	return func(m *Instrumented[T]) {
		m.reg = reg
	}
}

// WithTracing enables an OpenTelemetry span around every Lock call.
func WithTracing[T any]() Option[T] {
	return func(m *Instrumented[T]) {
		m.traceEnabled = true
	}
}

// New returns an Instrumented mutex delegating to inner.
func New[T any](inner mutex.Mutex[T], opts ...Option[T]) *Instrumented[T] {
	m := &Instrumented[T]{inner: inner}
	for _, opt := range opts {
		opt(m)
	}
	if m.reg != nil {
		labels := prometheus.Labels{"mutex": m.name}
		m.lockCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "mutex_instance_lock_total",
			Help:        "Total number of Lock calls on this mutex",
			ConstLabels: labels,
		})
		m.holdHist = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "mutex_instance_hold_seconds",
			Help:        "Time spent acquiring and holding this mutex",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		})
		m.reg.MustRegister(m.lockCounter, m.holdHist)
	}
	return m
}

// Lock implements mutex.Mutex. The wrapped implementation decides whether
// and how to block; Lock only measures the call.
func (m *Instrumented[T]) Lock(f func(*T)) {
	metrics.LockCounter.Inc()
	if m.lockCounter != nil {
		m.lockCounter.Inc()
	}

	var span trace.Span
	if m.traceEnabled {
		_, span = tracer.Start(context.Background(), "Mutex.Lock",
			trace.WithAttributes(attribute.String("mutex.name", m.name)))
	}

	start := time.Now()
	m.inner.Lock(f)
	held := time.Since(start)

	metrics.HoldTime.Observe(held.Seconds())
	if m.holdHist != nil {
		m.holdHist.Observe(held.Seconds())
	}
	if m.traceEnabled {
		span.SetAttributes(attribute.Int64("mutex.hold_ms", held.Milliseconds()))
		span.End()
	}
}
