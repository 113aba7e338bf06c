// Package middleware provides HTTP middleware for the toastify server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus request metrics middleware
//
// Both are plain func(http.Handler) http.Handler values and plug into a chi
// router with Use:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Tracing(middleware.WithTracerName("toastify")))
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//
// Spans and metric labels use the chi route pattern ("/api/toasts/{id}")
// rather than the raw path, which keeps label cardinality bounded.
//
// # OpenTelemetry
//
// The tracer comes from the global provider. Configure it in main() before
// starting the server:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//
// Handlers reach the request span through trace.SpanFromContext(r.Context()).
package middleware
