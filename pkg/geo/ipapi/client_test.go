package ipapi_test

import (
	"bus2ride/pkg/geo/ipapi"
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

func newTestClient(fn rtFunc) *ipapi.Client {
	return ipapi.New(&http.Client{Transport: fn}, "https://ipapi.test/")
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

func TestClient_LocateIP_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "ipapi.test", r.URL.Host)
		require.Equal(t, "/8.8.8.8/json/", r.URL.Path)

		return respond(http.StatusOK, `{"ip":"8.8.8.8","city":"Mountain View","region":"California",
			"country_name":"United States","country_code":"US","latitude":37.42,"longitude":-122.08}`)
	})

	p, err := c.LocateIP(context.Background(), " 8.8.8.8 ")
	require.NoError(t, err)
	require.Equal(t, "Mountain View", p.Name)
	require.Equal(t, "California", p.Admin1)
	require.True(t, p.InUS())
}

func TestClient_LocateIP_skipsLocalAddresses(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	})

	for _, ip := range []string{"", "not-an-ip", "127.0.0.1", "10.1.2.3", "192.168.0.10", "::1", "fd00::1"} {
		_, err := c.LocateIP(context.Background(), ip)
		require.ErrorIs(t, err, serrors.ErrNotFound, ip)
	}
}

func TestClient_LocateIP_errorBody(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"error":true,"reason":"Reserved IP Address"}`)
	})

	_, err := c.LocateIP(context.Background(), "8.8.4.4")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorContains(t, err, "Reserved IP Address")

	c = newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"error":true,"reason":"RateLimited"}`)
	})
	_, err = c.LocateIP(context.Background(), "8.8.4.4")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_LocateIP_tooManyRequests(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusTooManyRequests, `{"error":true,"reason":"RateLimited"}`)
	})

	_, err := c.LocateIP(context.Background(), "1.1.1.1")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_LocateIP_missingCity(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"ip":"1.1.1.1","country_name":"Australia"}`)
	})

	_, err := c.LocateIP(context.Background(), "1.1.1.1")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
