package middleware

import (
	"net/http"
	"time"
)

type metricsRecorder interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
	IncInFlight()
	DecInFlight()
}

// Metrics records request count, latency and in-flight requests. Requests are
// labelled with the matched ServeMux pattern, not the raw path.
func Metrics(rec metricsRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.IncInFlight()
			defer rec.DecInFlight()

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
