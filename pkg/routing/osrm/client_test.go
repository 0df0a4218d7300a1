package osrm_test

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/routing/osrm"
	"bus2ride/pkg/serrors"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *osrm.Client {
	return osrm.New(&http.Client{Transport: fn}, "https://router.test/")
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

var (
	from = domain.Coordinates{Lng: -104.99, Lat: 39.74}
	to   = domain.Coordinates{Lng: -105.27, Lat: 40.01}
)

func TestClient_Route_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "router.test", r.URL.Host)
		require.Equal(t, "/route/v1/driving/-104.99,39.74;-105.27,40.01", r.URL.Path)
		require.Equal(t, "false", r.URL.Query().Get("steps"))

		return respond(http.StatusOK, `{"code":"Ok","routes":[{"distance":48280.3,"duration":2520}]}`)
	})

	leg, err := c.Route(context.Background(), from, to)
	require.NoError(t, err)
	require.Equal(t, domain.Leg{DistanceMeters: 48280.3, DurationSeconds: 2520}, leg)
}

func TestClient_Route_codes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   serrors.Kind
		msg    string
	}{
		{"no route", http.StatusOK, `{"code":"NoRoute"}`, serrors.ErrNotFound, "no route found"},
		{"ok without routes", http.StatusOK, `{"code":"Ok","routes":[]}`, serrors.ErrNotFound, "no route found"},
		{"too big", http.StatusOK, `{"code":"TooBig"}`, serrors.ErrUpstream, "osrm: TooBig"},
		{"missing code", http.StatusOK, `{}`, serrors.ErrUpstream, "osrm: error"},
		{"http error", http.StatusBadRequest, `{"code":"InvalidQuery"}`, serrors.ErrUpstream, "upstream error"},
		{"rate limited", http.StatusTooManyRequests, `slow down`, serrors.ErrRateLimited, "rate limited"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(func(*http.Request) (*http.Response, error) {
				return respond(tt.status, tt.body)
			})

			_, err := c.Route(context.Background(), from, to)
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.msg, serrors.MessageOf(err))
		})
	}
}
