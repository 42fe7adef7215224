package slogx

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/idx"
)

// quietPaths are polled by orchestrators; their access lines go to Debug.
var quietPaths = map[string]bool{
	"/livez":      true,
	"/readyz":     true,
	"/api/health": true,
}

// HTTPMiddleware logs one access line per request and attaches a request
// logger to the context. Attributes added with Annotate by inner handlers,
// such as the authenticated principal, are carried on the access line.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = idx.New().String()
			}
			rw.Header().Set("X-Request-ID", reqID)

			logger := base.With(
				"req_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
			)

			notes := &annotations{}
			ctx := WithContext(r.Context(), logger)
			ctx = context.WithValue(ctx, annotationsKey{}, notes)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			switch {
			case rw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case quietPaths[r.URL.Path]:
				level = slog.LevelDebug
			}

			args := append([]any{
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			}, notes.list()...)
			logger.Log(ctx, level, "http_request", args...)
		})
	}
}

type annotationsKey struct{}

type annotations struct {
	mu   sync.Mutex
	args []any
}

func (a *annotations) add(args ...any) {
	a.mu.Lock()
	a.args = append(a.args, args...)
	a.mu.Unlock()
}

func (a *annotations) list() []any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.args
}

// Annotate adds key/value pairs to the request's access log line. It is a
// no-op outside HTTPMiddleware.
func Annotate(ctx context.Context, args ...any) {
	if a, ok := ctx.Value(annotationsKey{}).(*annotations); ok {
		a.add(args...)
	}
}

type responseWriter struct {
	http.ResponseWriter

	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
