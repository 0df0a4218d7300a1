// Package webapi provides a spotify.Client backed by the Spotify Web API
// using the client credentials flow.
package webapi

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/spotify"
	"bus2ride/pkg/upstream"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials identify the Spotify app.
type Credentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// Client talks to the Spotify Web API with an app token. Tokens are cached
// and refreshed shortly before they expire. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient sends API requests with the bearer token attached
	tokens     oauth2.TokenSource
	baseURL    string
}

type playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Images      []struct {
		URL string `json:"url"`
	} `json:"images"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func (p *playlist) toDomain() domain.Playlist {
	out := domain.Playlist{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		URL:         p.ExternalURLs.Spotify,
	}
	if len(p.Images) > 0 {
		out.Image = p.Images[0].URL
	}

	return out
}

// Authorize fetches a token unless a valid one is cached.
func (c *Client) Authorize(_ context.Context) error {
	if c.tokens == nil {
		return serrors.With(serrors.ErrUnauthorized, "missing spotify credentials")
	}
	if _, err := c.tokens.Token(); err != nil {
		return serrors.Wrap(serrors.ErrUnauthorized, err, "could not get spotify token")
	}

	return nil
}

// SearchPlaylists runs a playlist search.
func (c *Client) SearchPlaylists(ctx context.Context, query string, limit int) ([]domain.Playlist, error) {
	// https://developer.spotify.com/documentation/web-api/reference/search
	params := url.Values{
		"q":     {query},
		"type":  {"playlist"},
		"limit": {strconv.Itoa(limit)},
	}

	var rs struct {
		Playlists struct {
			// Spotify returns null entries for playlists it cannot show.
			Items []*playlist `json:"items"`
		} `json:"playlists"`
	}
	if err := upstream.GetJSON(ctx, c.httpClient, c.baseURL+"/v1/search?"+params.Encode(), nil, "search", &rs); err != nil {
		return nil, err
	}

	out := make([]domain.Playlist, 0, len(rs.Playlists.Items))
	for _, p := range rs.Playlists.Items {
		if p == nil {
			continue
		}
		out = append(out, p.toDomain())
	}

	return out, nil
}

// Playlist fetches playlist metadata for the US market.
func (c *Client) Playlist(ctx context.Context, id string) (*domain.Playlist, error) {
	// https://developer.spotify.com/documentation/web-api/reference/get-playlist
	u := c.baseURL + "/v1/playlists/" + url.PathEscape(id) + "?market=US"

	var rs playlist
	if err := upstream.GetJSON(ctx, c.httpClient, u, nil, "get playlist", &rs); err != nil {
		return nil, err
	}
	out := rs.toDomain()

	return &out, nil
}

// Ensure Client conforms to the spotify.Client interface at compile time.
var _ spotify.Client = (*Client)(nil)

// New constructs a Client. httpClient is used both for the token endpoint and,
// wrapped with the bearer token, for API calls. Without credentials the
// client is built but Authorize always fails.
func New(httpClient *http.Client, baseURL string, creds Credentials) *Client {
	c := &Client{baseURL: strings.TrimRight(baseURL, "/")}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		c.httpClient = httpClient

		return c
	}

	cfg := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     creds.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	c.tokens = cfg.TokenSource(tokenCtx)
	c.httpClient = &http.Client{
		Transport: &oauth2.Transport{Source: c.tokens, Base: httpClient.Transport},
		Timeout:   httpClient.Timeout,
	}

	return c
}
