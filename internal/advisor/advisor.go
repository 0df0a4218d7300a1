// Package advisor builds the weather advisory shown on event pages: it
// resolves a city (or the visitor's IP), fetches a forecast from the
// national weather service for US places or Open-Meteo elsewhere, and adds
// packing tips.
package advisor

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/geo"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/weather"
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// MaxCityLength bounds the city query.
const MaxCityLength = 128

var tracer = otel.Tracer("bus2ride/internal/advisor") //nolint: gochecknoglobals

type advisor struct {
	cities geo.CityLocator
	ips    geo.IPLocator
	// us serves places in the United States, global everything else and
	// stands in when us fails.
	us     weather.Forecaster
	global weather.Forecaster
}

// failed builds the advisory for err. The message is what the widget shows.
func failed(err error) (domain.Advisory, error) {
	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = "could not fetch weather"
	}

	return domain.Advisory{Error: msg}, err
}

func (a *advisor) place(ctx context.Context, city string, clientIP string) (*domain.Place, error) {
	if city == "" {
		p, err := a.ips.LocateIP(ctx, clientIP)
		if err != nil {
			logger.Debug(ctx, "could not locate client ip", zap.Error(err))

			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "city is required")
		}
		city = p.Name
	}

	p, err := a.cities.LocateCity(ctx, city)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return nil, serrors.With(serrors.ErrNotFound, "city not found")
		}

		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not fetch weather")
	}

	return p, nil
}

func (a *advisor) forecast(ctx context.Context, place domain.Place) (*domain.Forecast, error) {
	if place.InUS() {
		fc, err := a.us.Forecast(ctx, place)
		if err == nil {
			return fc, nil
		}
		if ctx.Err() != nil {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "could not fetch weather")
		}
		logger.Warn(ctx, "national weather service failed, falling back", zap.Error(err))
	}

	fc, err := a.global.Forecast(ctx, place)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not fetch weather")
	}

	return fc, nil
}

// Advise resolves city, or the city of clientIP when city is empty, and
// returns its forecast with tips. The advisory always carries exactly one
// of a forecast and an error message; the error is returned too so callers
// can pick a status.
func (a *advisor) Advise(ctx context.Context, city string, clientIP string) (domain.Advisory, error) {
	city = strings.TrimSpace(city)
	if len(city) > MaxCityLength {
		return failed(serrors.With(serrors.ErrBadRequest, "city must be at most %d characters", MaxCityLength))
	}

	ctx, span := tracer.Start(ctx, "advisor.Advise", trace.WithAttributes(attribute.Bool("from_ip", city == "")))
	defer span.End()

	place, err := a.place(ctx, city, clientIP)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "locate failed")

		return failed(err)
	}
	span.SetAttributes(attribute.String("city", place.Name), attribute.String("country", place.CountryCode))

	fc, err := a.forecast(ctx, *place)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "forecast failed")

		return failed(err)
	}
	span.SetAttributes(attribute.String("source", string(fc.Source)))

	return domain.Advisory{Forecast: fc, Tips: Tips(fc.Current)}, nil
}

// New returns an Advisor. us answers for places in the United States and
// global for the rest of the world.
func New(cities geo.CityLocator, ips geo.IPLocator, us weather.Forecaster, global weather.Forecaster) Advisor {
	return &advisor{cities: cities, ips: ips, us: us, global: global}
}
