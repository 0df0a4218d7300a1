package openmeteo_test

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/geo/openmeteo"
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

func newTestClient(fn rtFunc) *openmeteo.Client {
	return openmeteo.New(&http.Client{Transport: fn}, "https://geocoding.test")
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

func TestClient_LocateCity_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v1/search", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "Denver", q.Get("name"))
		require.Equal(t, "1", q.Get("count"))
		require.Equal(t, "en", q.Get("language"))
		require.Equal(t, "json", q.Get("format"))

		return respond(http.StatusOK, `{"results":[{"name":"Denver","latitude":39.74,"longitude":-104.98,
			"country":"United States","country_code":"us","admin1":"Colorado"}]}`)
	})

	p, err := c.LocateCity(context.Background(), "Denver")
	require.NoError(t, err)
	require.Equal(t, &domain.Place{
		Name: "Denver", Admin1: "Colorado", Country: "United States", CountryCode: "US", Lat: 39.74, Lon: -104.98,
	}, p)
	require.True(t, p.InUS())
}

func TestClient_LocateCity_notFound(t *testing.T) {
	// Open-Meteo omits results entirely when nothing matches.
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"generationtime_ms":0.5}`)
	})

	_, err := c.LocateCity(context.Background(), "Atlantis")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "city not found", serrors.MessageOf(err))
}

func TestClient_LocateCity_badRequest(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusBadRequest, `{"error":true,"reason":"Parameter count must be between 1 and 100."}`)
	})

	_, err := c.LocateCity(context.Background(), "Denver")
	require.ErrorIs(t, err, serrors.ErrUpstream)
}

func TestClient_Suggest(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "6", r.URL.Query().Get("count"))

		return respond(http.StatusOK, `{"results":[
			{"name":"Springfield","latitude":39.8,"longitude":-89.6,"country":"United States","admin1":"Illinois","population":114394},
			{"name":"Springfield","latitude":37.2,"longitude":-93.3,"country":"United States","admin1":"Missouri","population":169176},
			{"name":"","country":""}
		]}`)
	})

	got, err := c.Suggest(context.Background(), "Springf", domain.SuggestionKindCity, 6)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Springfield, Illinois, United States", got[0].Label)
	require.Equal(t, 169176, got[1].Rank)
}
