package metric

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreStats is a point-in-time view of store sizes.
type StoreStats struct {
	Identities int
	Sessions   int
	Memos      int
}

// StatsFunc reads current store sizes.
type StatsFunc func(ctx context.Context) (StoreStats, error)

// collectTimeout bounds a single stats read during a scrape.
const collectTimeout = 2 * time.Second

// Collector reports store sizes as gauges at scrape time.
type Collector struct {
	stats StatsFunc

	identities *prometheus.Desc
	sessions   *prometheus.Desc
	memos      *prometheus.Desc
	up         *prometheus.Desc
}

// NewCollector creates a store collector.
func NewCollector(stats StatsFunc) *Collector {
	return &Collector{
		stats: stats,
		identities: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "store", "identities"),
			"Registered identities", nil, nil),
		sessions: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "store", "sessions_active"),
			"Live sessions", nil, nil),
		memos: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "store", "memos"),
			"Memos in the shared list", nil, nil),
		up: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "store", "up"),
			"Whether the last stats read succeeded", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.identities
	ch <- c.sessions
	ch <- c.memos
	ch <- c.up
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	stats, err := c.stats(ctx)
	if err != nil {
		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 0)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1)
	ch <- prometheus.MustNewConstMetric(c.identities, prometheus.GaugeValue, float64(stats.Identities))
	ch <- prometheus.MustNewConstMetric(c.sessions, prometheus.GaugeValue, float64(stats.Sessions))
	ch <- prometheus.MustNewConstMetric(c.memos, prometheus.GaugeValue, float64(stats.Memos))
}
