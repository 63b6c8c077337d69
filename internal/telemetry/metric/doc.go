// Package metric provides Prometheus metrics for MemoHalo.
//
//   - prometheus.go: registry, HTTP request and auth counters, /metrics handler
//   - collector.go: store size gauges read at scrape time
//
// Metrics are exposed at /metrics in Prometheus text format.
package metric
