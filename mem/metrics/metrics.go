// Package metrics exposes per-allocator accounting as prometheus metrics.
//
// The Collector reads the registry's allocator table on every scrape, so
// allocators created after registration show up without re-wiring. It is
// never auto-registered; the embedding process decides where it goes:
//
//	prometheus.MustRegister(metrics.NewCollector(mem.Default()))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/memkit/memkit/mem"
)

var (
	descCurrent = prometheus.NewDesc(
		"memkit_allocator_current_bytes",
		"Live bytes allocated through an allocator.",
		[]string{"allocator"},
		nil,
	)
	descHighWatermark = prometheus.NewDesc(
		"memkit_allocator_high_watermark_bytes",
		"Maximum live bytes ever observed for an allocator.",
		[]string{"allocator"},
		nil,
	)
	descActual = prometheus.NewDesc(
		"memkit_allocator_actual_bytes",
		"Bytes physically reserved from the backing layer by an allocator.",
		[]string{"allocator"},
		nil,
	)
)

// Collector implements prometheus.Collector over one registry.
type Collector struct {
	registry *mem.Registry
}

// NewCollector creates a collector reporting every allocator registered in
// r at scrape time.
func NewCollector(r *mem.Registry) *Collector {
	return &Collector{registry: r}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- descCurrent
	ch <- descHighWatermark
	ch <- descActual
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, a := range c.registry.Allocators() {
		name := a.Name()
		ch <- prometheus.MustNewConstMetric(
			descCurrent, prometheus.GaugeValue, float64(a.CurrentSize()), name)
		ch <- prometheus.MustNewConstMetric(
			descHighWatermark, prometheus.GaugeValue, float64(a.HighWatermark()), name)
		ch <- prometheus.MustNewConstMetric(
			descActual, prometheus.GaugeValue, float64(a.ActualSize()), name)
	}
}

// Compile-time interface check
var _ prometheus.Collector = (*Collector)(nil)
