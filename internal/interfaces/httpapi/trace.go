package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("soccer-tracker/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span for the league and session handlers. /healthz and /metrics
// never reach here with a parent because otelhttp skips them (shouldTraceRequest), and the
// API docs handlers are excluded by name so scrapers and doc browsing stay out of traces.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
}

func shouldCreateHTTPAPISpan(name string) bool {
	handler, ok := strings.CutPrefix(name, "httpapi.Handler.")
	if !ok {
		return false
	}
	switch handler {
	case "Healthz", "OpenAPI", "SwaggerUI":
		return false
	default:
		return true
	}
}
