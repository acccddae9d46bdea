package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/social-api/internal/api/shared"
	"github.com/phrazzld/social-api/internal/platform/logger"
)

// TraceIDHeader is read from inbound requests and echoed on every response.
const TraceIDHeader = "X-Trace-ID"

// maxTraceIDLength bounds inbound trace ids so they cannot bloat log lines.
const maxTraceIDLength = 128

// Trace adds a trace ID to the request context and attaches a logger carrying
// it. An inbound X-Trace-ID is reused when present; otherwise a new uuid is
// generated. Apply early so every later handler sees the trace ID.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if traceID == "" || len(traceID) > maxTraceIDLength {
				traceID = uuid.NewString()
			}

			w.Header().Set(TraceIDHeader, traceID)

			log := base.With(slog.String("trace_id", traceID))
			ctx := shared.WithTraceID(r.Context(), traceID)
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
