package webapi_test

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/spotify/webapi"
	"bus2ride/pkg/upstream"
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

var creds = webapi.Credentials{
	ClientID:     "client-id",
	ClientSecret: "client-secret",
	TokenURL:     "https://accounts.test/api/token",
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

// tokenOr serves the token endpoint and hands every other request to api.
func tokenOr(t *testing.T, tokenCalls *atomic.Int32, api rtFunc) rtFunc {
	t.Helper()

	return func(r *http.Request) (*http.Response, error) {
		if r.URL.Host == "accounts.test" {
			tokenCalls.Add(1)
			require.Equal(t, http.MethodPost, r.Method)
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			require.Equal(t, "client-id", user)
			require.Equal(t, "client-secret", pass)
			require.NoError(t, r.ParseForm())
			require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

			return respond(http.StatusOK, `{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`)
		}
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		return api(r)
	}
}

func newTestClient(t *testing.T, tokenCalls *atomic.Int32, api rtFunc) *webapi.Client {
	t.Helper()

	return webapi.New(&http.Client{Transport: tokenOr(t, tokenCalls, api)}, "https://api.spotify.test", creds)
}

func TestClient_Authorize_cachesToken(t *testing.T) {
	var tokenCalls atomic.Int32
	c := newTestClient(t, &tokenCalls, func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"playlists":{"items":[]}}`)
	})

	require.NoError(t, c.Authorize(context.Background()))
	require.NoError(t, c.Authorize(context.Background()))
	_, err := c.SearchPlaylists(context.Background(), "party", 8)
	require.NoError(t, err)
	require.Equal(t, int32(1), tokenCalls.Load())
}

func TestClient_Authorize_failures(t *testing.T) {
	c := webapi.New(&http.Client{}, "https://api.spotify.test", webapi.Credentials{})
	err := c.Authorize(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	c = webapi.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusBadRequest, `{"error":"invalid_client"}`)
	})}, "https://api.spotify.test", creds)
	err = c.Authorize(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.ErrorContains(t, err, "invalid_client")
}

func TestClient_SearchPlaylists(t *testing.T) {
	var tokenCalls atomic.Int32
	c := newTestClient(t, &tokenCalls, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v1/search", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "bachelorette party", q.Get("q"))
		require.Equal(t, "playlist", q.Get("type"))
		require.Equal(t, "8", q.Get("limit"))

		return respond(http.StatusOK, `{"playlists":{"items":[
			{"id":"37i9dQZF1DX0","name":"Party Bus","description":"<b>Loud</b> hits",
			 "images":[{"url":"https://i.scdn.test/a.jpg"},{"url":"https://i.scdn.test/b.jpg"}],
			 "external_urls":{"spotify":"https://open.spotify.test/playlist/37i9dQZF1DX0"}},
			null,
			{"id":"x2","name":""}
		]}}`)
	})

	got, err := c.SearchPlaylists(context.Background(), "bachelorette party", 8)
	require.NoError(t, err)
	require.Equal(t, []domain.Playlist{
		{
			ID:          "37i9dQZF1DX0",
			Name:        "Party Bus",
			Description: "<b>Loud</b> hits",
			Image:       "https://i.scdn.test/a.jpg",
			URL:         "https://open.spotify.test/playlist/37i9dQZF1DX0",
		},
		{ID: "x2"},
	}, got)
}

func TestClient_Playlist(t *testing.T) {
	var tokenCalls atomic.Int32
	c := newTestClient(t, &tokenCalls, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "US", r.URL.Query().Get("market"))
		switch r.URL.Path {
		case "/v1/playlists/abc12345":
			return respond(http.StatusOK, `{"id":"abc12345","name":"Prom Night","description":"slow dances"}`)
		case "/v1/playlists/private1":
			return respond(http.StatusNotFound, `{"error":{"status":404,"message":"Not found."}}`)
		default:
			return respond(http.StatusForbidden, `{"error":{"status":403}}`)
		}
	})

	p, err := c.Playlist(context.Background(), "abc12345")
	require.NoError(t, err)
	require.Equal(t, "Prom Night", p.Name)

	_, err = c.Playlist(context.Background(), "private1")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, upstream.StatusCode(err))

	_, err = c.Playlist(context.Background(), "other123")
	require.ErrorIs(t, err, serrors.ErrUpstream)
	require.Equal(t, http.StatusForbidden, upstream.StatusCode(err))
}
