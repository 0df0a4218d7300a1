// Package planner turns an ordered list of stops into a driving plan and
// serves address and city autocomplete.
package planner

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/geo"
	"bus2ride/pkg/routing"
	"bus2ride/pkg/serrors"
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// MaxStops bounds how many addresses one plan may route through.
	MaxStops = 10
	// MinSuggestQuery is the shortest query autocomplete answers.
	MinSuggestQuery = 3
	// MaxSuggestions caps autocomplete results.
	MaxSuggestions = 6
)

var tracer = otel.Tracer("bus2ride/internal/planner") //nolint: gochecknoglobals

type planner struct {
	geocoder geo.Geocoder
	cities   geo.Suggester
	router   routing.Router
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// providerError keeps user-fixable outcomes (an address or leg the provider
// could not resolve) as bad requests and reports everything else as an
// upstream failure.
func providerError(err error, notFoundMsg string) error {
	if errors.Is(err, serrors.ErrNotFound) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s", notFoundMsg)
	}

	return serrors.Wrap(serrors.ErrUpstream, err, "directions provider error")
}

// Plan geocodes the stops one at a time, routes each consecutive pair in
// the given order and sums the legs.
func (p *planner) Plan(ctx context.Context, addresses []string) (*domain.RoutePlan, error) {
	stops := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if a = strings.TrimSpace(a); a != "" {
			stops = append(stops, a)
		}
	}
	if len(stops) < 2 {
		return nil, serrors.With(serrors.ErrBadRequest, "need at least start and end addresses")
	}
	if len(stops) > MaxStops {
		return nil, serrors.With(serrors.ErrBadRequest, "at most %d stops are allowed", MaxStops)
	}

	ctx, span := tracer.Start(ctx, "planner.Plan", trace.WithAttributes(attribute.Int("stops", len(stops))))
	defer span.End()

	plan := &domain.RoutePlan{
		Addresses:   stops,
		Coordinates: make([]domain.Coordinates, 0, len(stops)),
		Segments:    make([]domain.Leg, 0, len(stops)-1),
	}

	// serial on purpose: the free geocoders throttle bursts
	for _, a := range stops {
		c, err := p.geocoder.Geocode(ctx, a)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "geocode failed")

			return nil, providerError(err, fmt.Sprintf("could not find address %q", a))
		}
		plan.Coordinates = append(plan.Coordinates, c)
	}

	for i := 0; i < len(plan.Coordinates)-1; i++ {
		leg, err := p.router.Route(ctx, plan.Coordinates[i], plan.Coordinates[i+1])
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "route failed")

			return nil, providerError(err, fmt.Sprintf("no route found between %q and %q", stops[i], stops[i+1]))
		}
		plan.Segments = append(plan.Segments, leg)
		plan.DistanceMeters += leg.DistanceMeters
		plan.DurationSeconds += leg.DurationSeconds
	}

	plan.DistanceMiles = round2(plan.DistanceMeters / domain.MetersPerMile)
	plan.DurationMinutes = round2(plan.DurationSeconds / 60)
	span.SetAttributes(attribute.Float64("distance_miles", plan.DistanceMiles))

	return plan, nil
}

// Suggest returns up to MaxSuggestions candidates, best ranked first, with
// duplicate labels removed. Queries shorter than MinSuggestQuery get nothing.
func (p *planner) Suggest(ctx context.Context, query string, kind domain.SuggestionKind) ([]domain.Suggestion, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSuggestQuery {
		return []domain.Suggestion{}, nil
	}

	var provider geo.Suggester
	switch kind {
	case domain.SuggestionKindAddress, "":
		kind = domain.SuggestionKindAddress
		provider = p.geocoder
	case domain.SuggestionKindCity:
		provider = p.cities
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "kind must be one of: address, city")
	}

	got, err := provider.Suggest(ctx, query, kind, MaxSuggestions)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "geocode suggest failed")
	}

	return Rank(got, MaxSuggestions), nil
}

// Rank orders suggestions by descending rank, keeping provider order among
// equals, drops blank and repeated labels and caps the result at limit.
func Rank(in []domain.Suggestion, limit int) []domain.Suggestion {
	sorted := slices.Clone(in)
	slices.SortStableFunc(sorted, func(a, b domain.Suggestion) int {
		return cmp.Compare(b.Rank, a.Rank)
	})

	out := make([]domain.Suggestion, 0, min(limit, len(sorted)))
	seen := make(map[string]struct{}, len(sorted))
	for _, s := range sorted {
		if len(out) == limit {
			break
		}
		s.Label = strings.TrimSpace(s.Label)
		if s.Label == "" {
			continue
		}
		if _, ok := seen[s.Label]; ok {
			continue
		}
		seen[s.Label] = struct{}{}
		out = append(out, s)
	}

	return out
}

// New returns a Planner. geocoder serves address lookups and cities serves
// city autocomplete.
func New(geocoder geo.Geocoder, cities geo.Suggester, router routing.Router) Planner {
	return &planner{geocoder: geocoder, cities: cities, router: router}
}
