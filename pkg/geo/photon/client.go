// Package photon provides a geo.Geocoder backed by the OpenStreetMap based
// Photon geocoder (komoot).
package photon

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/geo"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/upstream"
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	addressLayer = regexp.MustCompile(`house|addr|address`)  //nolint: gochecknoglobals
	streetLayer  = regexp.MustCompile(`street|road|highway`) //nolint: gochecknoglobals
)

// Client talks to a Photon instance. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

type properties struct {
	Name        string `json:"name"`
	HouseNumber string `json:"housenumber"`
	Street      string `json:"street"`
	City        string `json:"city"`
	District    string `json:"district"`
	County      string `json:"county"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
	OSMValue    string `json:"osm_value"`
	Type        string `json:"type"`
}

type feature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties properties `json:"properties"`
}

func (f feature) coordinates() (domain.Coordinates, bool) {
	c := f.Geometry.Coordinates
	if len(c) != 2 {
		return domain.Coordinates{}, false
	}

	return domain.Coordinates{Lng: c[0], Lat: c[1]}, true
}

// Rank puts house numbers and addresses above streets, and streets above
// everything else.
func Rank(p properties) int {
	layer := strings.ToLower(p.OSMValue)
	if layer == "" {
		layer = strings.ToLower(p.Type)
	}

	switch {
	case addressLayer.MatchString(layer):
		return 3
	case streetLayer.MatchString(layer):
		return 2
	default:
		return 1
	}
}

// Label builds a readable one-line address, leading with "<number> <street>"
// when both are known.
func Label(p properties) string {
	var parts []string
	if p.HouseNumber != "" && p.Street != "" {
		parts = append(parts, p.HouseNumber+" "+p.Street)
	} else {
		parts = append(parts, firstNonEmpty(p.Name, p.Street))
	}
	parts = append(parts, firstNonEmpty(p.City, p.District, p.County), p.State, p.Postcode, p.Country)

	nonEmpty := parts[:0]
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	return strings.Join(nonEmpty, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func (c *Client) search(ctx context.Context, params url.Values, op string) ([]feature, error) {
	var rs struct {
		Features []feature `json:"features"`
	}
	if err := upstream.GetJSON(ctx, c.httpClient, c.baseURL+"/api/?"+params.Encode(), nil, op, &rs); err != nil {
		return nil, err
	}

	return rs.Features, nil
}

// Geocode resolves address to the coordinates of the first Photon feature.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	features, err := c.search(ctx, url.Values{"q": {address}, "limit": {"1"}}, "photon geocode")
	if err != nil {
		return domain.Coordinates{}, err
	}
	if len(features) > 0 {
		if coords, ok := features[0].coordinates(); ok {
			return coords, nil
		}
	}

	return domain.Coordinates{}, serrors.With(serrors.ErrNotFound, "no result for %q", address)
}

// Suggest autocompletes query. Photon ignores repeated layer filters, so
// address lookups pull everything and rely on Rank; city lookups ask for the
// city layer only.
func (c *Client) Suggest(
	ctx context.Context,
	query string,
	kind domain.SuggestionKind,
	limit int,
) ([]domain.Suggestion, error) {
	params := url.Values{
		"q":     {query},
		"limit": {strconv.Itoa(limit + 2)},
		"lang":  {"en"},
	}
	if kind == domain.SuggestionKindCity {
		params.Set("layer", "city")
	}

	features, err := c.search(ctx, params, "photon suggest")
	if err != nil {
		return nil, err
	}

	out := make([]domain.Suggestion, 0, len(features))
	for _, f := range features {
		label := Label(f.Properties)
		if label == "" {
			continue
		}
		coords, _ := f.coordinates()
		out = append(out, domain.Suggestion{Label: label, Coords: coords, Rank: Rank(f.Properties)})
	}

	return out, nil
}

// Ensure Client conforms to the geo.Geocoder interface at compile time.
var _ geo.Geocoder = (*Client)(nil)

// New constructs a Client for the Photon instance at baseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}
