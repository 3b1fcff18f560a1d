// Package monitoring provides Prometheus metrics for a calculator session.
//
// Metrics live on a private registry; nothing is exposed over the network.
// The menu logs a Snapshot gathered from that registry when the session ends,
// and WriteTextfile can export the registry for the node_exporter textfile
// collector.
//
// Metrics Collected:
//   - Module invocations and their duration
//   - Domain errors (division by zero, zero totals, complex results)
//   - Rejected input tokens
//   - Main menu selections
//
// Example Usage:
//
//	metrics := monitoring.NewMetrics()
//	metrics.RecordModuleRun("arithmetic", time.Since(start))
//	snap := metrics.Snapshot()
//	err := metrics.WriteTextfile("/var/lib/node_exporter/calcshell.prom")
package monitoring
