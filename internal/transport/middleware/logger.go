package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// healthPaths are polled by the orchestrator; successful polls log at DEBUG.
var healthPaths = map[string]bool{"/live": true, "/ready": true, "/metrics": true}

// Logger writes one "http.request" record per request. Client errors log at
// WARN and server errors at ERROR. Authenticated requests carry user_id and
// requests that name a time zone carry tz.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			level := accessLevel(r.URL.Path, sw.status)
			if !logger.Enabled(ctx, level) {
				return
			}

			attrs := make([]slog.Attr, 0, 8)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}
			if tz := r.Header.Get(TimezoneHeader); tz != "" {
				attrs = append(attrs, slog.String("tz", tz))
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case healthPaths[path]:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// statusWriter records the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
