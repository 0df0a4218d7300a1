package controller

import (
	"bus2ride/pkg/metrics"
	"net/http"
	"strconv"
	"time"
)

// unmatchedRoute labels requests no route pattern matched, keeping the
// label cardinality bounded.
const unmatchedRoute = "unmatched"

// WithMetrics observes request durations labeled by the ServeMux pattern that
// served the request. It must wrap the mux directly: the mux records the
// matched pattern on the request it receives.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
