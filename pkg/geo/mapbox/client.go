// Package mapbox provides a geo.Geocoder backed by the Mapbox geocoding API.
package mapbox

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/geo"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/upstream"
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client talks to the Mapbox places endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

type feature struct {
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
	Relevance float64   `json:"relevance"`
}

func (f feature) coordinates() (domain.Coordinates, bool) {
	if len(f.Center) != 2 {
		return domain.Coordinates{}, false
	}

	return domain.Coordinates{Lng: f.Center[0], Lat: f.Center[1]}, true
}

func (c *Client) places(ctx context.Context, query string, params url.Values, op string) ([]feature, error) {
	// https://docs.mapbox.com/api/search/geocoding-v5/
	params.Set("access_token", c.token)
	u := c.baseURL + "/geocoding/v5/mapbox.places/" + url.PathEscape(query) + ".json?" + params.Encode()

	var rs struct {
		Features []feature `json:"features"`
	}
	if err := upstream.GetJSON(ctx, c.httpClient, u, nil, op, &rs); err != nil {
		return nil, err
	}

	return rs.Features, nil
}

// Geocode resolves address to the center of the best matching feature.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	features, err := c.places(ctx, address, url.Values{"limit": {"1"}}, "mapbox geocode")
	if err != nil {
		return domain.Coordinates{}, err
	}
	if len(features) == 0 {
		return domain.Coordinates{}, serrors.With(serrors.ErrNotFound, "no result for %q", address)
	}
	coords, ok := features[0].coordinates()
	if !ok {
		return domain.Coordinates{}, serrors.With(serrors.ErrNotFound, "no result for %q", address)
	}

	return coords, nil
}

// Suggest autocompletes query. Addresses are limited to house-number
// addresses and POIs in the US; cities to places.
func (c *Client) Suggest(
	ctx context.Context,
	query string,
	kind domain.SuggestionKind,
	limit int,
) ([]domain.Suggestion, error) {
	types := "address,poi"
	if kind == domain.SuggestionKindCity {
		types = "place"
	}
	params := url.Values{
		"autocomplete": {"true"},
		"limit":        {strconv.Itoa(limit)},
		"types":        {types},
		"country":      {"US"},
	}

	features, err := c.places(ctx, query, params, "mapbox suggest")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Suggestion, 0, len(features))
	for _, f := range features {
		label := strings.TrimSpace(f.PlaceName)
		if label == "" {
			continue
		}
		coords, _ := f.coordinates()
		out = append(out, domain.Suggestion{Label: label, Coords: coords, Rank: int(math.Round(f.Relevance * 100))})
	}

	return out, nil
}

// Ensure Client conforms to the geo.Geocoder interface at compile time.
var _ geo.Geocoder = (*Client)(nil)

// New constructs a Client for the Mapbox API at baseURL using token.
func New(httpClient *http.Client, baseURL string, token string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}
