// Package metrics exports corekit service statistics as Prometheus
// collectors.
//
// Collectors read their source on every scrape; nothing is cached.
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewAtomCollector(tbl, "myapp"))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/corekit/core/atom"
	"github.com/joshuapare/corekit/core/objpool"
)

const subsystemAtom = "atom"

// AtomCollector reports the size of an atom.Table.
type AtomCollector struct {
	table   *atom.Table
	strings *prometheus.Desc
	bytes   *prometheus.Desc
	slabs   *prometheus.Desc
}

// NewAtomCollector returns a collector for t. namespace prefixes every
// metric name and may be empty.
func NewAtomCollector(t *atom.Table, namespace string) *AtomCollector {
	return &AtomCollector{
		table: t,
		strings: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystemAtom, "strings"),
			"Number of distinct interned strings.", nil, nil),
		bytes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystemAtom, "bytes"),
			"Bytes of canonical text stored in the arena.", nil, nil),
		slabs: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystemAtom, "slabs"),
			"Number of arena slabs held.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *AtomCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.strings
	ch <- c.bytes
	ch <- c.slabs
}

// Collect implements prometheus.Collector.
func (c *AtomCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.table.Stats()
	ch <- prometheus.MustNewConstMetric(c.strings, prometheus.GaugeValue, float64(st.Strings))
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.GaugeValue, float64(st.Bytes))
	ch <- prometheus.MustNewConstMetric(c.slabs, prometheus.GaugeValue, float64(st.Slabs))
}

// PoolCollector reports the size of an objpool.Pool.
type PoolCollector struct {
	pool    *objpool.Pool
	objects *prometheus.Desc
	types   *prometheus.Desc
}

// NewPoolCollector returns a collector for p.
func NewPoolCollector(p *objpool.Pool, namespace string) *PoolCollector {
	return &PoolCollector{
		pool: p,
		objects: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "objpool", "objects"),
			"Objects stored across all storages, including those pending destroy.", nil, nil),
		types: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "objpool", "types"),
			"Number of registered value types.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.objects
	ch <- c.types
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.objects, prometheus.GaugeValue, float64(c.pool.Len()))
	ch <- prometheus.MustNewConstMetric(c.types, prometheus.GaugeValue, float64(c.pool.Types()))
}
