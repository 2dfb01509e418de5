package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
)

// ObservabilityMiddleware adds OpenTelemetry tracing and metrics to HTTP requests
func ObservabilityMiddleware(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := observability.StartSpan(r.Context(), r.Method+" "+r.URL.Path)
			defer span.End()

			sw := &statusWriter{ResponseWriter: w}
			req := r.WithContext(ctx)

			start := time.Now()
			next.ServeHTTP(sw, req)
			duration := time.Since(start)

			// The mux records the matched pattern on the request it was given.
			// Cache hits never reach it, so fall back to the raw path.
			route := req.Pattern
			if route == "" {
				route = r.Method + " " + r.URL.Path
			}
			span.SetName(route)

			status := sw.Status()
			span.SetAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.String("http.user_agent", r.UserAgent()),
				attribute.Int("http.status_code", status),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			observability.RecordRequestMetric(ctx, metrics, r.Method, route, status, duration)
		})
	}
}
