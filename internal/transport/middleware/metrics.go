package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	ObserveHTTPRequest(route, method string, status int, d time.Duration)
	RequestStarted() func()
}

// Metrics records request count and latency per matched route. It must wrap
// the ServeMux directly so r.Pattern is populated after routing.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := rec.RequestStarted()
			defer done()

			start := time.Now()
			sw := wrapWriter(w)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.ObserveHTTPRequest(route, r.Method, sw.status, time.Since(start))
		})
	}
}
