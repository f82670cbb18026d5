// Package tracing provides OpenTelemetry tracing for the HTTP surface.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this instrumentation scope.
const tracerName = "fineart"

// GetTracer returns the tracer for creating spans. The tracer is resolved
// per call so a provider installed after package init is still picked up.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
