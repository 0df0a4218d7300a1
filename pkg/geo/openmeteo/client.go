// Package openmeteo provides a geo.CityLocator backed by the Open-Meteo
// geocoding API.
package openmeteo

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/geo"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/upstream"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client talks to the Open-Meteo geocoding API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

type result struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
	Population  int     `json:"population"`
}

func (r result) place() domain.Place {
	return domain.Place{
		Name:        r.Name,
		Admin1:      r.Admin1,
		Country:     r.Country,
		CountryCode: strings.ToUpper(r.CountryCode),
		Lat:         r.Latitude,
		Lon:         r.Longitude,
	}
}

func (c *Client) search(ctx context.Context, name string, count int, op string) ([]result, error) {
	// https://open-meteo.com/en/docs/geocoding-api
	params := url.Values{
		"name":     {name},
		"count":    {strconv.Itoa(count)},
		"language": {"en"},
		"format":   {"json"},
	}

	var rs struct {
		Results []result `json:"results"`
	}
	if err := upstream.GetJSON(ctx, c.httpClient, c.baseURL+"/v1/search?"+params.Encode(), nil, op, &rs); err != nil {
		return nil, err
	}

	return rs.Results, nil
}

// LocateCity returns the best match for name.
func (c *Client) LocateCity(ctx context.Context, name string) (*domain.Place, error) {
	results, err := c.search(ctx, name, 1, "city lookup")
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "city not found")
	}

	p := results[0].place()

	return &p, nil
}

// Suggest lists matching cities as "Name, Region, Country". Open-Meteo only
// knows populated places, so kind is ignored.
func (c *Client) Suggest(
	ctx context.Context,
	query string,
	_ domain.SuggestionKind,
	limit int,
) ([]domain.Suggestion, error) {
	results, err := c.search(ctx, query, limit, "city suggest")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Suggestion, 0, len(results))
	for _, r := range results {
		var parts []string
		for _, s := range []string{r.Name, r.Admin1, r.Country} {
			if s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			continue
		}
		out = append(out, domain.Suggestion{
			Label:  strings.Join(parts, ", "),
			Coords: domain.Coordinates{Lng: r.Longitude, Lat: r.Latitude},
			Rank:   r.Population,
		})
	}

	return out, nil
}

// Ensure Client conforms to the geo.CityLocator interface at compile time.
var _ geo.CityLocator = (*Client)(nil)

// New constructs a Client for the geocoding API at baseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}
