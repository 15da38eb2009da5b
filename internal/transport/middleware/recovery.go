package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/recoverylock-backend/pkg/ctxutil"
)

// Recovery returns middleware that recovers from panics, logs the error with
// a stack trace and the request identifiers, and responds with a JSON 500
// unless the response was already started.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					attrs := []slog.Attr{
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					}
					if r.Pattern != "" {
						attrs = append(attrs, slog.String("route", r.Pattern))
					}
					attrs = append(attrs, ctxutil.LogAttrs(r.Context())...)
					logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

					// A handler that already started its response cannot be
					// given a new status; the client sees a truncated body.
					if sw, ok := w.(*statusWriter); ok && sw.wroteHeader {
						return
					}
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// writeError emits the same {"error": "..."} body as the REST handlers.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}` + "\n"))
}
