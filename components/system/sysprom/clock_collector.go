package sysprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/open-control-systems/monoclock/components/system/syscore"
)

// ClockStatsReader provides the clock counters and capabilities.
type ClockStatsReader interface {
	// Stats returns the counters collected so far.
	Stats() syscore.ClockStats

	// SourceKind returns the kind of the underlying source.
	SourceKind() syscore.SourceKind
}

// ClockCollector exports the monotonic clock statistics as Prometheus metrics.
type ClockCollector struct {
	reader ClockStatsReader

	readsDesc       *prometheus.Desc
	synthesizedDesc *prometheus.Desc
	sourceDesc      *prometheus.Desc
}

// NewClockCollector is an initialization of ClockCollector.
func NewClockCollector(reader ClockStatsReader) *ClockCollector {
	return &ClockCollector{
		reader: reader,
		readsDesc: prometheus.NewDesc(
			"monoclock_reads_total",
			"Number of successful monotonic clock readings",
			nil, nil,
		),
		synthesizedDesc: prometheus.NewDesc(
			"monoclock_synthesized_total",
			"Number of readings synthesized because the source didn't move forward",
			nil, nil,
		),
		sourceDesc: prometheus.NewDesc(
			"monoclock_source_info",
			"Kind of the time source backing the clock",
			[]string{"kind", "monotonic"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *ClockCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.readsDesc
	ch <- c.synthesizedDesc
	ch <- c.sourceDesc
}

// Collect implements prometheus.Collector.
func (c *ClockCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.reader.Stats()
	kind := c.reader.SourceKind()

	monotonic := "false"
	if kind.Monotonic() {
		monotonic = "true"
	}

	ch <- prometheus.MustNewConstMetric(c.readsDesc, prometheus.CounterValue,
		float64(stats.Reads))
	ch <- prometheus.MustNewConstMetric(c.synthesizedDesc, prometheus.CounterValue,
		float64(stats.Synthesized))
	ch <- prometheus.MustNewConstMetric(c.sourceDesc, prometheus.GaugeValue, 1,
		kind.String(), monotonic)
}
