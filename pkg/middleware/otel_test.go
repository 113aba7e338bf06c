package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// recordingProvider hands out spans that remember what the middleware set.
type recordingProvider struct {
	noop.TracerProvider
	mu    sync.Mutex
	spans []*recordingSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{provider: p}
}

func (p *recordingProvider) last(t *testing.T) *recordingSpan {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.spans) == 0 {
		t.Fatal("expected a span to be started")
	}
	return p.spans[len(p.spans)-1]
}

type recordingTracer struct {
	noop.Tracer
	provider *recordingProvider
}

func (tr *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordingSpan{name: name, kind: cfg.SpanKind(), attrs: map[attribute.Key]attribute.Value{}}
	for _, kv := range cfg.Attributes() {
		span.attrs[kv.Key] = kv.Value
	}
	tr.provider.mu.Lock()
	tr.provider.spans = append(tr.provider.spans, span)
	tr.provider.mu.Unlock()
	return trace.ContextWithSpan(ctx, span), span
}

type recordingSpan struct {
	noop.Span
	name   string
	kind   trace.SpanKind
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	ended  bool
}

func (s *recordingSpan) SetName(name string)                { s.name = name }
func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }
func (s *recordingSpan) End(...trace.SpanEndOption)         { s.ended = true }
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func TestTracing_NamesSpanAfterRoute(t *testing.T) {
	tp := &recordingProvider{}
	var inHandler trace.Span

	r := chi.NewRouter()
	r.Use(Tracing(
		WithTracerProvider(tp),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	))
	r.Delete("/api/toasts/{id}", func(w http.ResponseWriter, r *http.Request) {
		inHandler = trace.SpanFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/toasts/abc", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	span := tp.last(t)
	if inHandler != trace.Span(span) {
		t.Error("handler should see the request span in its context")
	}
	if span.name != "DELETE /api/toasts/{id}" {
		t.Errorf("span name = %q", span.name)
	}
	if span.kind != trace.SpanKindServer {
		t.Errorf("span kind = %v, want server", span.kind)
	}
	if got := span.attrs["http.route"].AsString(); got != "/api/toasts/{id}" {
		t.Errorf("http.route = %q", got)
	}
	if got := span.attrs["http.response.status_code"].AsInt64(); got != http.StatusNoContent {
		t.Errorf("status attribute = %d", got)
	}
	if got := span.attrs["test.attr"].AsString(); got != "ok" {
		t.Errorf("custom attribute = %q", got)
	}
	if span.status != codes.Ok || !span.ended {
		t.Errorf("status = %v ended = %v", span.status, span.ended)
	}
}

func TestTracing_ServerErrorMarksSpan(t *testing.T) {
	tp := &recordingProvider{}
	h := Tracing(WithTracerProvider(tp))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/container", nil))

	span := tp.last(t)
	if span.status != codes.Error {
		t.Errorf("status = %v, want error", span.status)
	}
	if span.name != "GET /container" {
		t.Errorf("unrouted span name = %q", span.name)
	}
}

func TestTracing_FilterSkipsTracing(t *testing.T) {
	tp := &recordingProvider{}
	called := false
	h := Tracing(
		WithTracerProvider(tp),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/metrics" }),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if !called {
		t.Fatal("next handler was not called")
	}
	if len(tp.spans) != 0 {
		t.Errorf("expected no spans, got %d", len(tp.spans))
	}
}
