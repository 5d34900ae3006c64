package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/dualclass-api/internal/api/shared"
	"github.com/phrazzld/dualclass-api/internal/platform/logger"
)

// TraceMiddleware returns middleware that adds a trace ID to the request
// context and stores a logger carrying it, so handlers and services log
// with the same trace_id that error responses echo.
// Apply it early in the middleware chain.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
