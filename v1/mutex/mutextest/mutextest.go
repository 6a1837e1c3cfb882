// Package mutextest provides a reusable conformance suite for Mutex
// implementations. Downstream packages that build a concrete mutex (atomic
// flag, interrupt mask, hardware peripheral) run the suite in their own
// tests to verify the pass-through contract and, where applicable,
// cross-goroutine exclusion.
package mutextest

import (
	"runtime"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/mirkobrombin/go-mutex/v1/mutex"
)

// Run exercises the sequential contract of a Mutex implementation: the
// closure result is returned unchanged, mutations stay visible across Lock
// calls, and repeated lock cycles keep the value consistent. factory must
// return a fresh mutex protecting the given initial value.
func Run(t *testing.T, factory func(initial int) mutex.Mutex[int]) {
	t.Helper()

	m := factory(0)
	old := mutex.With(m, func(v *int) int {
		old := *v
		*v++
		return old
	})
	if old != 0 {
		t.Fatalf("expected closure result 0, got %d", old)
	}
	if now := mutex.With(m, func(v *int) int { return *v }); now != 1 {
		t.Fatalf("mutation not visible after Lock, counter = %d", now)
	}

	m = factory(100)
	for i := 0; i < 50; i++ {
		m.Lock(func(v *int) { *v++ })
	}
	if got := mutex.With(m, func(v *int) int { return *v }); got != 150 {
		t.Fatalf("expected 150 after 50 increments, got %d", got)
	}
}

// RunConcurrent hammers a Mutex implementation from several goroutines and
// fails if two closures ever execute at the same time. Only meaningful for
// implementations that synchronize across goroutines; Exclusive and Cell
// are excluded by design.
func RunConcurrent(t *testing.T, factory func(initial int) mutex.Mutex[int], workers, iterations int) {
	t.Helper()

	m := factory(0)
	var inside, overlaps atomic.Int32
	g := new(errgroup.Group)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < iterations; j++ {
				m.Lock(func(v *int) {
					if inside.Add(1) > 1 {
						overlaps.Add(1)
					}
					*v++
					runtime.Gosched()
					inside.Add(-1)
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("worker: %v", err)
	}
	if n := overlaps.Load(); n > 0 {
		t.Fatalf("critical sections overlapped %d times", n)
	}
	want := workers * iterations
	if got := mutex.With(m, func(v *int) int { return *v }); got != want {
		t.Fatalf("expected %d increments, got %d", want, got)
	}
}
