package mapbox_test

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/routing/mapbox"
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

func newTestClient(fn rtFunc) *mapbox.Client {
	return mapbox.New(&http.Client{Transport: fn}, "https://api.mapbox.test", "pk.test")
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

var (
	willis = domain.Coordinates{Lng: -87.6359, Lat: 41.8789}
	ohare  = domain.Coordinates{Lng: -87.9073, Lat: 41.9742}
)

func TestClient_Route_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/directions/v5/mapbox/driving/-87.6359,41.8789;-87.9073,41.9742", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "false", q.Get("overview"))
		require.Equal(t, "false", q.Get("alternatives"))
		require.Equal(t, "pk.test", q.Get("access_token"))

		return respond(http.StatusOK, `{"code":"Ok","routes":[{"distance":27358.4,"duration":1903.2},{"distance":1,"duration":1}]}`)
	})

	leg, err := c.Route(context.Background(), willis, ohare)
	require.NoError(t, err)
	require.Equal(t, domain.Leg{DistanceMeters: 27358.4, DurationSeconds: 1903.2}, leg)
}

func TestClient_Route_noRoute(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"code":"NoRoute","routes":[]}`)
	})

	_, err := c.Route(context.Background(), willis, ohare)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_Route_invalidInput(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusUnprocessableEntity, `{"code":"InvalidInput","message":"Coordinate is invalid"}`)
	})

	_, err := c.Route(context.Background(), willis, ohare)
	require.ErrorIs(t, err, serrors.ErrUpstream)
	require.ErrorContains(t, err, "Coordinate is invalid")
}
