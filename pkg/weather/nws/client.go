// Package nws provides a weather.Forecaster backed by the US National
// Weather Service API (api.weather.gov).
package nws

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/upstream"
	"bus2ride/pkg/weather"
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var windSpeedNumber = regexp.MustCompile(`\d+`) //nolint: gochecknoglobals

// Client talks to the NWS API. The service rejects requests without a
// User-Agent identifying the caller. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

type period struct {
	Name                       string    `json:"name"`
	StartTime                  time.Time `json:"startTime"`
	IsDaytime                  bool      `json:"isDaytime"`
	Temperature                float64   `json:"temperature"`
	TemperatureUnit            string    `json:"temperatureUnit"`
	WindSpeed                  string    `json:"windSpeed"`
	WindDirection              string    `json:"windDirection"`
	ShortForecast              string    `json:"shortForecast"`
	ProbabilityOfPrecipitation struct {
		Value *float64 `json:"value"`
	} `json:"probabilityOfPrecipitation"`
}

// WindMph returns the highest number in an NWS wind string such as
// "10 to 15 mph", or 0 when there is none.
func WindMph(s string) float64 {
	var top float64
	for _, m := range windSpeedNumber.FindAllString(s, -1) {
		if v, err := strconv.ParseFloat(m, 64); err == nil && v > top {
			top = v
		}
	}

	return top
}

func (p period) toDomain() domain.ForecastPeriod {
	temp := p.Temperature
	if strings.EqualFold(p.TemperatureUnit, "C") {
		temp = weather.CelsiusToFahrenheit(temp)
	}
	cond := weather.DescribeText(p.ShortForecast)

	return domain.ForecastPeriod{
		Name:          p.Name,
		Start:         p.StartTime,
		HighF:         temp,
		WindMph:       WindMph(p.WindSpeed),
		WindDirection: p.WindDirection,
		Summary:       cond.Summary,
		Rain:          cond.Rain,
		Snow:          cond.Snow,
	}
}

func (c *Client) header() http.Header {
	return http.Header{
		"User-Agent": {c.userAgent},
		"Accept":     {"application/geo+json"},
	}
}

// forecastURL checks the gridpoint forecast link handed back by the points
// endpoint. Only links on the configured API host are followed.
func (c *Client) forecastURL(raw string) (string, error) {
	if raw == "" {
		return "", serrors.With(serrors.ErrUpstream, "nws: no forecast url")
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "invalid nws base url")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host != base.Host {
		return "", serrors.With(serrors.ErrUpstream, "nws: unexpected forecast url %q", raw)
	}

	return u.String(), nil
}

// Forecast resolves the place to an NWS gridpoint and returns its forecast
// periods, usually seven days split into day and night.
func (c *Client) Forecast(ctx context.Context, place domain.Place) (*domain.Forecast, error) {
	// https://www.weather.gov/documentation/services-web-api
	point := strconv.FormatFloat(place.Lat, 'f', 4, 64) + "," + strconv.FormatFloat(place.Lon, 'f', 4, 64)

	var points struct {
		Properties struct {
			Forecast string `json:"forecast"`
		} `json:"properties"`
	}
	if err := upstream.GetJSON(ctx, c.httpClient, c.baseURL+"/points/"+point, c.header(), "nws points", &points); err != nil {
		return nil, err
	}

	forecastURL, err := c.forecastURL(points.Properties.Forecast)
	if err != nil {
		return nil, err
	}

	var fc struct {
		Properties struct {
			Periods []period `json:"periods"`
		} `json:"properties"`
	}
	if err := upstream.GetJSON(ctx, c.httpClient, forecastURL, c.header(), "nws forecast", &fc); err != nil {
		return nil, err
	}
	if len(fc.Properties.Periods) == 0 {
		return nil, serrors.With(serrors.ErrUpstream, "nws: no forecast periods")
	}

	out := &domain.Forecast{
		Place:   place,
		Source:  domain.ForecastSourceNWS,
		Periods: make([]domain.ForecastPeriod, 0, len(fc.Properties.Periods)),
	}
	for _, p := range fc.Properties.Periods {
		out.Periods = append(out.Periods, p.toDomain())
	}
	out.Current = out.Periods[0]

	return out, nil
}

// Ensure Client conforms to the weather.Forecaster interface at compile time.
var _ weather.Forecaster = (*Client)(nil)

// New constructs a Client for the NWS API at baseURL, identifying itself
// with userAgent.
func New(httpClient *http.Client, baseURL string, userAgent string) *Client {
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/"), userAgent: userAgent}
}
