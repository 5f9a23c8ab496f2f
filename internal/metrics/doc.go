// Package metrics records build observations for govuksite.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites. When a metrics file
// is requested the CLI swaps in a PrometheusRecorder backed by a private
// registry and writes it out in the Prometheus text format once the build has
// finished (suitable for the node_exporter textfile collector).
package metrics
