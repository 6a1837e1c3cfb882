package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// LockCounter tracks the number of Lock calls across all instrumented
	// mutexes.
	LockCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mutex_lock_total",
		Help: "Total number of Lock calls",
	})
	// HoldTime observes how long closures hold their mutex, acquisition
	// included.
	HoldTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mutex_hold_seconds",
		Help:    "Time spent acquiring and holding a mutex",
		Buckets: prometheus.DefBuckets,
	})
)

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// RegisterCoreMetrics registers the package-wide mutex metrics on the
// provided registry.
func RegisterCoreMetrics(reg prometheus.Registerer) {
	reg.MustRegister(LockCounter, HoldTime)
}
