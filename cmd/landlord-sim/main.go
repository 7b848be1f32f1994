// Command landlord-sim runs a trace through a full Landlord cache and a
// suffix Landlord cache and reports their costs, pressures and suffix
// competitive ratio: a flat flag block, log.Fatalf on any input error,
// optional Prometheus endpoint.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	landlord "github.com/go-pkgz/landlord-sim"
	"github.com/go-pkgz/landlord-sim/metrics"
	"github.com/go-pkgz/landlord-sim/report"
	"github.com/go-pkgz/landlord-sim/sim"
	"github.com/go-pkgz/landlord-sim/trace"
)

// main recovers from any panic raised by a programming-invariant
// violation deep in the engine (e.g. a NaN credit, a desynced tiebreak
// order) and reports it the same way as any other fatal error, instead
// of letting it surface as a raw Go panic and stack trace.
func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("landlord-sim: internal error: %v", r)
		}
	}()
	run()
}

func run() {
	var (
		in          = flag.String("in", "", "input trace config path (required)")
		out         = flag.String("out", "", "output report path (required)")
		capacity    = flag.Int("cap", 0, "cache capacity C (required)")
		suffixStart = flag.Int("suffix-start", 0, "trace index D the suffix cache starts serving from")
		hitFlag     = flag.String("hit", "LRU", "hit policy: LRU | FIFO | RAND | HALF")
		tiebreak    = flag.String("tiebreak", "LRU", "tiebreak policy: LRU | FIFO | RAND")
		seed        = flag.Int64("seed", 1, "PRNG seed for RAND policies")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
	)
	flag.Parse()

	if *in == "" || *out == "" || *capacity <= 0 {
		log.Fatalf("landlord-sim: -in, -out and -cap are required")
	}

	hitPolicy, err := landlord.ParseHitPolicy(*hitFlag)
	if err != nil {
		log.Fatalf("landlord-sim: %v", err)
	}
	tiebreakPolicy, err := landlord.ParseTiebreakPolicy(*tiebreak)
	if err != nil {
		log.Fatalf("landlord-sim: %v", err)
	}

	var notifier landlord.Notifier = landlord.NopNotifier{}
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		notifier = metrics.New(reg, "landlord", "sim")
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			log.Printf("landlord-sim: serving metrics at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil)) // nolint:gosec
		}()
	}

	cfg, err := trace.Load(*in, *capacity)
	if err != nil {
		log.Fatalf("landlord-sim: %v", err)
	}

	drv, err := sim.New(cfg.Items, *capacity, *suffixStart, hitPolicy, tiebreakPolicy,
		[]landlord.Option{landlord.WithSeed(*seed), landlord.WithNotifier(notifier)},
		[]landlord.Option{landlord.WithSeed(*seed), landlord.WithNotifier(notifier)},
	)
	if err != nil {
		log.Fatalf("landlord-sim: %v", err)
	}

	drv.Run(cfg.Requests)

	summary := report.Build(drv.Tracker(), cfg.Items)
	if err := report.WriteFile(*out, summary); err != nil {
		log.Fatalf("landlord-sim: %v", err)
	}
}
