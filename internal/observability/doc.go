// Package observability groups structured logging, Prometheus metrics and
// OpenTelemetry tracing for the newsroom API.
//
// Subpackages:
//   - logging: slog construction and request scoped loggers
//   - metrics: business and store metrics recorders
//   - tracing: tracer provider setup and HTTP span middleware
package observability
