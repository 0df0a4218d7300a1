// Package osrm provides a routing.Router backed by an OSRM server, by
// default the public demo instance.
package osrm

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

// Client talks to the OSRM route service. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Route returns the first route OSRM proposes between from and to. OSRM
// reports failures in the code field, sometimes with a 200.
func (c *Client) Route(ctx context.Context, from, to domain.Coordinates) (domain.Leg, error) {
	// https://project-osrm.org/docs/v5.24.0/api/#route-service
	params := url.Values{
		"overview":     {"false"},
		"alternatives": {"false"},
		"steps":        {"false"},
	}
	u := c.baseURL + "/route/v1/driving/" + routing.PathSegment(from, to) + "?" + params.Encode()

	var rs struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Routes  []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"routes"`
	}
	if err := upstream.GetJSON(ctx, c.httpClient, u, nil, "osrm route", &rs); err != nil {
		return domain.Leg{}, err
	}

	switch rs.Code {
	case "Ok":
	case "NoRoute", "NoSegment":
		return domain.Leg{}, serrors.With(serrors.ErrNotFound, "no route found")
	case "":
		return domain.Leg{}, serrors.With(serrors.ErrUpstream, "osrm: error")
	default:
		return domain.Leg{}, serrors.With(serrors.ErrUpstream, "osrm: %s", rs.Code)
	}
	if len(rs.Routes) == 0 {
		return domain.Leg{}, serrors.With(serrors.ErrNotFound, "no route found")
	}

	return domain.Leg{DistanceMeters: rs.Routes[0].Distance, DurationSeconds: rs.Routes[0].Duration}, nil
}

// Ensure Client conforms to the routing.Router interface at compile time.
var _ routing.Router = (*Client)(nil)

// New constructs a Client for the OSRM server at baseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}
