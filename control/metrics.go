// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus exposition of array pool accounting.

package control

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-pooled/api"
)

const metricsNamespace = "hioload_pool"

var (
	rentsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(metricsNamespace, "", "rents_total"),
		"Total Rent calls, by outcome.",
		[]string{"pool", "outcome"}, nil,
	)
	returnsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(metricsNamespace, "", "returns_total"),
		"Total buffers handed back to the pool.",
		[]string{"pool"}, nil,
	)
	dropsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(metricsNamespace, "", "drops_total"),
		"Returned buffers discarded because their bucket was full.",
		[]string{"pool"}, nil,
	)
	trimmedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(metricsNamespace, "", "trimmed_total"),
		"Buffers evicted by Trim.",
		[]string{"pool"}, nil,
	)
	pooledDesc = prometheus.NewDesc(
		prometheus.BuildFQName(metricsNamespace, "", "pooled_buffers"),
		"Buffers currently retained, by size class length.",
		[]string{"pool", "length"}, nil,
	)
)

// StatsFunc yields a pool snapshot.
type StatsFunc func() api.PoolStats

// PoolCollector is a prometheus.Collector over one or more pools.
//
// Pools are single-threaded: Collect calls each StatsFunc on the calling
// goroutine, so Gather must run on the goroutine that owns the pools.
type PoolCollector struct {
	mu      sync.RWMutex
	sources map[string]StatsFunc
}

// NewPoolCollector creates an empty collector.
func NewPoolCollector() *PoolCollector {
	return &PoolCollector{
		sources: make(map[string]StatsFunc),
	}
}

// Add registers a stats source under name, replacing any previous one.
func (pc *PoolCollector) Add(name string, fn StatsFunc) {
	pc.mu.Lock()
	pc.sources[name] = fn
	pc.mu.Unlock()
}

// Remove unregisters a stats source.
func (pc *PoolCollector) Remove(name string) {
	pc.mu.Lock()
	delete(pc.sources, name)
	pc.mu.Unlock()
}

// Describe implements prometheus.Collector.
func (pc *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- rentsDesc
	ch <- returnsDesc
	ch <- dropsDesc
	ch <- trimmedDesc
	ch <- pooledDesc
}

// Collect implements prometheus.Collector.
func (pc *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	for name, fn := range pc.sources {
		s := fn()
		ch <- prometheus.MustNewConstMetric(rentsDesc, prometheus.CounterValue, float64(s.Hits), name, "hit")
		ch <- prometheus.MustNewConstMetric(rentsDesc, prometheus.CounterValue, float64(s.Misses), name, "miss")
		ch <- prometheus.MustNewConstMetric(rentsDesc, prometheus.CounterValue, float64(s.Oversized), name, "oversized")
		ch <- prometheus.MustNewConstMetric(returnsDesc, prometheus.CounterValue, float64(s.Returns), name)
		ch <- prometheus.MustNewConstMetric(dropsDesc, prometheus.CounterValue, float64(s.Drops), name)
		ch <- prometheus.MustNewConstMetric(trimmedDesc, prometheus.CounterValue, float64(s.Trimmed), name)
		for _, b := range s.Buckets {
			ch <- prometheus.MustNewConstMetric(pooledDesc, prometheus.GaugeValue, float64(b.Count), name, strconv.Itoa(b.Length))
		}
	}
}

var _ prometheus.Collector = (*PoolCollector)(nil)
