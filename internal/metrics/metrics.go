package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"neurosync/internal/analytics"
	"neurosync/internal/triage"
)

var (
	classificationDesc = prometheus.NewDesc(
		"neurosync_classifications_total",
		"Total classified support messages by severity tier",
		[]string{"tier"},
		nil,
	)
)

// SeverityCollector is a custom Prometheus collector that reads the
// classification tally on each scrape.
type SeverityCollector struct {
	tally *analytics.Tally
}

// NewSeverityCollector returns a collector over tally.
func NewSeverityCollector(tally *analytics.Tally) *SeverityCollector {
	return &SeverityCollector{tally: tally}
}

// Describe sends the metric descriptor to the channel.
func (c *SeverityCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- classificationDesc
}

// Collect emits one counter per tier, zeros included.
func (c *SeverityCollector) Collect(ch chan<- prometheus.Metric) {
	snap := c.tally.Snapshot()
	for _, tier := range triage.Tiers() {
		ch <- prometheus.MustNewConstMetric(
			classificationDesc,
			prometheus.CounterValue,
			float64(snap[tier]),
			string(tier),
		)
	}
}

var (
	tally    *analytics.Tally
	initOnce sync.Once
)

// Init registers the collector with the default registry and makes t the
// target of RecordClassification. Must be called once at startup.
func Init(t *analytics.Tally) {
	initOnce.Do(func() {
		tally = t
		prometheus.MustRegister(NewSeverityCollector(t))
	})
}

// RecordClassification counts one classified message. It is a no-op before Init.
func RecordClassification(tier triage.Tier) {
	if tally == nil {
		return
	}
	tally.Record(tier)
}
