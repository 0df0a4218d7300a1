// Package metrics holds the Prometheus collectors shared by the HTTP server
// and the upstream API clients.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

var (
	// HTTPRequestDuration observes served requests by route pattern, method and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
		Namespace: "bus2ride",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of served HTTP requests.",
		Buckets:   DefaultBuckets,
	}, []string{"route", "method", "code"})

	// UpstreamRequestDuration observes calls to third-party APIs.
	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
		Namespace: "bus2ride",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests sent to third-party APIs.",
		Buckets:   DefaultBuckets,
	}, []string{"upstream", "method", "code"})

	// UpstreamInFlight tracks concurrent third-party requests.
	UpstreamInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint: gochecknoglobals
		Namespace: "bus2ride",
		Subsystem: "upstream",
		Name:      "in_flight_requests",
		Help:      "Number of in-flight requests to third-party APIs.",
	}, []string{"upstream"})
)

// InstrumentTransport wraps next so every round trip is observed under the
// given upstream name. A nil next uses http.DefaultTransport.
func InstrumentTransport(upstream string, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	duration := UpstreamRequestDuration.MustCurryWith(prometheus.Labels{"upstream": upstream})

	return promhttp.InstrumentRoundTripperInFlight(UpstreamInFlight.WithLabelValues(upstream),
		promhttp.InstrumentRoundTripperDuration(duration, next))
}

// NewClient returns an http.Client for the named upstream with instrumented
// transport and the given timeout.
func NewClient(upstream string, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: InstrumentTransport(upstream, nil),
		Timeout:   timeout,
	}
}
