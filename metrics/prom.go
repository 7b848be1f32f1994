// Package metrics adapts a landlord.Engine's hit/fault events to
// Prometheus metrics: a small struct of pre-registered collectors,
// constructed once and handed to the engine as a landlord.Notifier.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	landlord "github.com/go-pkgz/landlord-sim"
)

// Adapter implements landlord.Notifier and exports Prometheus counters
// and a histogram of eviction pressure. Safe for concurrent use since
// every Prometheus metric type is goroutine-safe, though the engine
// itself calls it synchronously from a single goroutine.
type Adapter struct {
	hits     prometheus.Counter
	faults   prometheus.Counter
	pressure prometheus.Histogram
}

// New constructs a Prometheus adapter and registers its collectors
// with reg (prometheus.DefaultRegisterer if nil), under namespace ns
// and subsystem sub.
func New(reg prometheus.Registerer, ns, sub string) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "hits_total", Help: "Engine hits",
		}),
		faults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "faults_total", Help: "Engine faults",
		}),
		pressure: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: sub, Name: "eviction_pressure", Help: "Pressure charged per fault",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(a.hits, a.faults, a.pressure)
	return a
}

// OnHit implements landlord.Notifier.
func (a *Adapter) OnHit(*landlord.Item) { a.hits.Inc() }

// OnFault implements landlord.Notifier.
func (a *Adapter) OnFault(_ *landlord.Item, pressure float64) {
	a.faults.Inc()
	a.pressure.Observe(pressure)
}
