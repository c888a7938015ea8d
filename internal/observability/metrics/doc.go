// Package metrics provides the Prometheus business metrics of the newsroom.
//
// It covers:
//   - Article mutations (created, updated, deleted, views)
//   - Breaking news additions and wire imports
//   - Text generation per task (duration, output length, failures)
//   - Source content extraction used by the draft tooling
//   - Document store operation latency
//
// HTTP request metrics live with the HTTP handlers. All metrics are registered
// with the Prometheus default registry and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "herald/internal/observability/metrics"
//
//	start := time.Now()
//	text, err := completer.Complete(ctx, prompt)
//	metrics.RecordGeneration("headline", time.Since(start), len(text), err)
package metrics
