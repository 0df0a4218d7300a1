// Package mapbox provides a routing.Router backed by the Mapbox Directions API.
package mapbox

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/routing"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/upstream"
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the Mapbox driving directions endpoint. It is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Route returns the first route Mapbox proposes between from and to.
func (c *Client) Route(ctx context.Context, from, to domain.Coordinates) (domain.Leg, error) {
	// https://docs.mapbox.com/api/navigation/directions/
	params := url.Values{
		"overview":     {"false"},
		"alternatives": {"false"},
		"geometries":   {"geojson"},
		"access_token": {c.token},
	}
	u := c.baseURL + "/directions/v5/mapbox/driving/" + routing.PathSegment(from, to) + "?" + params.Encode()

	var rs struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"routes"`
	}
	if err := upstream.GetJSON(ctx, c.httpClient, u, nil, "mapbox directions", &rs); err != nil {
		return domain.Leg{}, err
	}
	if len(rs.Routes) == 0 {
		return domain.Leg{}, serrors.With(serrors.ErrNotFound, "no route found")
	}

	return domain.Leg{DistanceMeters: rs.Routes[0].Distance, DurationSeconds: rs.Routes[0].Duration}, nil
}

// Ensure Client conforms to the routing.Router interface at compile time.
var _ routing.Router = (*Client)(nil)

// New constructs a Client for the Mapbox API at baseURL using token.
func New(httpClient *http.Client, baseURL string, token string) *Client {
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/"), token: token}
}
