package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/utafrali/storefront/pkg/logger"
)

// RequestLogger stores a request-scoped logger in the context, enriched with
// correlation_id, session_id, trace_id and span_id. Handlers read it with
// logger.FromContext.
//
// The session ID is the trimmed X-Session-ID header; it is what
// logger.SessionIDFromContext returns downstream.
//
// Mount after RequestLogging and Tracing.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if sessionID := strings.TrimSpace(r.Header.Get(HeaderSessionID)); sessionID != "" {
				ctx = logger.WithSessionID(ctx, sessionID)
			}
			ctx = logger.NewContext(ctx, logger.WithContext(ctx, base))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
