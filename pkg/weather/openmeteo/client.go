// Package openmeteo provides a weather.Forecaster backed by the Open-Meteo
// forecast API, used for places outside the US.
package openmeteo

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/upstream"
	"bus2ride/pkg/weather"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the Open-Meteo forecast API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

type response struct {
	UTCOffsetSeconds int `json:"utc_offset_seconds"`
	CurrentWeather   *struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature"`
		WindSpeed     float64 `json:"windspeed"`
		WindDirection float64 `json:"winddirection"`
		WeatherCode   int     `json:"weathercode"`
	} `json:"current_weather"`
	Daily *struct {
		Time             []string  `json:"time"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WeatherCode      []int     `json:"weathercode"`
		WindSpeedMax     []float64 `json:"windspeed_10m_max"`
	} `json:"daily"`
}

func at[T any](s []T, i int) (T, bool) {
	var zero T
	if i < len(s) {
		return s[i], true
	}

	return zero, false
}

func (r *response) periods(loc *time.Location) []domain.ForecastPeriod {
	d := r.Daily
	out := make([]domain.ForecastPeriod, 0, len(d.Time))
	for i, day := range d.Time {
		start, err := time.ParseInLocation(time.DateOnly, day, loc)
		if err != nil {
			continue
		}

		code, _ := at(d.WeatherCode, i)
		cond := weather.DescribeWMO(code)
		high, _ := at(d.TemperatureMax, i)
		wind, _ := at(d.WindSpeedMax, i)
		p := domain.ForecastPeriod{
			Name:    start.Weekday().String(),
			Start:   start,
			HighF:   high,
			WindMph: wind,
			Summary: cond.Summary,
			Rain:    cond.Rain,
			Snow:    cond.Snow,
		}
		if i == 0 {
			p.Name = "Today"
		}
		if low, ok := at(d.TemperatureMin, i); ok {
			p.LowF = &low
		}
		if precip, ok := at(d.PrecipitationSum, i); ok {
			p.PrecipInches = &precip
		}
		out = append(out, p)
	}

	return out
}

// Forecast returns the current conditions and the daily forecast for place
// in Fahrenheit, inches and mph.
func (c *Client) Forecast(ctx context.Context, place domain.Place) (*domain.Forecast, error) {
	// https://open-meteo.com/en/docs
	params := url.Values{
		"latitude":           {strconv.FormatFloat(place.Lat, 'f', -1, 64)},
		"longitude":          {strconv.FormatFloat(place.Lon, 'f', -1, 64)},
		"daily":              {"temperature_2m_max,temperature_2m_min,precipitation_sum,weathercode,windspeed_10m_max"},
		"current_weather":    {"true"},
		"temperature_unit":   {"fahrenheit"},
		"precipitation_unit": {"inch"},
		"windspeed_unit":     {"mph"},
		"timezone":           {"auto"},
	}

	var rs response
	if err := upstream.GetJSON(ctx, c.httpClient, c.baseURL+"/v1/forecast?"+params.Encode(), nil, "forecast", &rs); err != nil {
		return nil, err
	}
	if rs.Daily == nil || len(rs.Daily.Time) == 0 {
		return nil, serrors.With(serrors.ErrUpstream, "no forecast data")
	}

	loc := time.FixedZone("", rs.UTCOffsetSeconds)
	out := &domain.Forecast{
		Place:   place,
		Source:  domain.ForecastSourceOpenMeteo,
		Periods: rs.periods(loc),
	}
	if len(out.Periods) == 0 {
		return nil, serrors.With(serrors.ErrUpstream, "no forecast data")
	}

	out.Current = out.Periods[0]
	if cw := rs.CurrentWeather; cw != nil {
		cond := weather.DescribeWMO(cw.WeatherCode)
		start, err := time.ParseInLocation("2006-01-02T15:04", cw.Time, loc)
		if err != nil {
			start = out.Periods[0].Start
		}
		out.Current = domain.ForecastPeriod{
			Name:          "Now",
			Start:         start,
			HighF:         cw.Temperature,
			LowF:          out.Periods[0].LowF,
			PrecipInches:  out.Periods[0].PrecipInches,
			WindMph:       cw.WindSpeed,
			WindDirection: weather.Compass(cw.WindDirection),
			Summary:       cond.Summary,
			Rain:          cond.Rain,
			Snow:          cond.Snow,
		}
	}

	return out, nil
}

// Ensure Client conforms to the weather.Forecaster interface at compile time.
var _ weather.Forecaster = (*Client)(nil)

// New constructs a Client for the forecast API at baseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}
