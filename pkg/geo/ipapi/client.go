// Package ipapi provides a geo.IPLocator backed by ipapi.co.
package ipapi

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/geo"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/upstream"
	"context"
	"net/http"
	"net/netip"
	"strings"
)

// Client talks to the ipapi.co JSON API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// LocateIP resolves ip to the city it is registered in. Private, loopback
// and malformed addresses are rejected without a request since the service
// would otherwise locate the server itself.
func (c *Client) LocateIP(ctx context.Context, ip string) (*domain.Place, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return nil, serrors.With(serrors.ErrNotFound, "ip location not found")
	}
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return nil, serrors.With(serrors.ErrNotFound, "ip location not found")
	}

	// https://ipapi.co/api/#complete-location
	var rs struct {
		City        string  `json:"city"`
		Region      string  `json:"region"`
		CountryName string  `json:"country_name"`
		CountryCode string  `json:"country_code"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Error       bool    `json:"error"`
		Reason      string  `json:"reason"`
	}
	err = upstream.GetJSON(ctx, c.httpClient, c.baseURL+"/"+addr.String()+"/json/", nil, "ip lookup", &rs)
	if err != nil {
		return nil, err
	}
	if rs.Error {
		// reserved ranges and quota errors come back as 200 with error set
		if strings.Contains(strings.ToLower(rs.Reason), "ratelimited") {
			return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", rs.Reason)
		}

		return nil, serrors.With(serrors.ErrNotFound, "ip location not found: %s", rs.Reason)
	}
	if rs.City == "" {
		return nil, serrors.With(serrors.ErrNotFound, "ip location not found")
	}

	return &domain.Place{
		Name:        rs.City,
		Admin1:      rs.Region,
		Country:     rs.CountryName,
		CountryCode: rs.CountryCode,
		Lat:         rs.Latitude,
		Lon:         rs.Longitude,
	}, nil
}

// Ensure Client conforms to the geo.IPLocator interface at compile time.
var _ geo.IPLocator = (*Client)(nil)

// New constructs a Client for the ipapi API at baseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}
