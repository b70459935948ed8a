package quadtree

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the optional Prometheus instrumentation a host may wire
// into an Arena and Cache. A nil *Metrics disables instrumentation
// entirely; every call site checks for nil before touching a metric.
type Metrics struct {
	ArenaSize  prometheus.Gauge
	CacheSize  prometheus.Gauge
	CacheHits  prometheus.Counter
	CacheMiss  prometheus.Counter
	Generation prometheus.Gauge
}

// NewMetrics registers a fresh set of HashLife metrics on reg. Callers
// that do not want metrics exposed should simply not call this and pass
// a nil *Metrics to NewArena/NewCache instead.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ArenaSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hashlife_arena_nodes",
			Help: "Number of distinct interned quadtree nodes.",
		}),
		CacheSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hashlife_result_cache_entries",
			Help: "Approximate number of entries held in the result cache.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_result_cache_hits_total",
			Help: "Result cache lookups served from memo.",
		}),
		CacheMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_result_cache_misses_total",
			Help: "Result cache lookups that required recomputation.",
		}),
		Generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hashlife_generation",
			Help: "Current generation counter of the most recently stepped universe.",
		}),
	}
	reg.MustRegister(m.ArenaSize, m.CacheSize, m.CacheHits, m.CacheMiss, m.Generation)
	return m
}
