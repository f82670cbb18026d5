package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.ForceFlush(context.Background())
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
	})
	return exporter
}

func TestMiddleware_CreatesSpan(t *testing.T) {
	exporter := setupTestTracer(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/artworks", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name != "GET /api/artworks" {
		t.Errorf("expected span name 'GET /api/artworks', got '%s'", span.Name)
	}
	if span.SpanKind != trace.SpanKindServer {
		t.Errorf("expected server span kind, got %v", span.SpanKind)
	}

	var gotStatus, gotMethod, gotPath bool
	for _, attr := range span.Attributes {
		switch string(attr.Key) {
		case "http.status_code":
			gotStatus = true
			if attr.Value.AsInt64() != int64(http.StatusOK) {
				t.Errorf("expected status 200, got %d", attr.Value.AsInt64())
			}
		case "http.method":
			gotMethod = true
		case "http.path":
			gotPath = true
		}
	}
	if !gotStatus || !gotMethod || !gotPath {
		t.Errorf("missing span attributes: status=%v method=%v path=%v", gotStatus, gotMethod, gotPath)
	}
}

func TestMiddleware_SetsTraceIDHeader(t *testing.T) {
	setupTestTracer(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("X-Trace-Id") == "" {
		t.Error("expected X-Trace-Id response header to be set")
	}
}

func TestMiddleware_MarksServerErrors(t *testing.T) {
	exporter := setupTestTracer(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/exhibitions", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	var marked bool
	for _, attr := range spans[0].Attributes {
		if string(attr.Key) == "error" && attr.Value.AsBool() {
			marked = true
		}
	}
	if !marked {
		t.Error("expected error attribute on 5xx span")
	}
}

func TestMiddleware_ExtractsParentContext(t *testing.T) {
	exporter := setupTestTracer(t)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/artists/1", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].SpanContext.TraceID().String() != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("expected propagated trace ID, got %s", spans[0].SpanContext.TraceID().String())
	}
}
