// Package tracing installs the OpenTelemetry tracer provider and wraps HTTP
// handlers in server spans.
//
//	shutdown := tracing.Setup("herald-api", version)
//	defer shutdown(ctx)
//	handler = tracing.Middleware(handler)
//
// Trace context is propagated in W3C traceparent format and the trace id is
// echoed in the X-Trace-Id response header so it can be matched to log lines.
package tracing
