package openmeteo_test

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/weather/openmeteo"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *openmeteo.Client {
	return openmeteo.New(&http.Client{Transport: fn}, "https://forecast.test/")
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

var toronto = domain.Place{Name: "Toronto", Country: "Canada", CountryCode: "CA", Lat: 43.7, Lon: -79.42}

func TestClient_Forecast_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v1/forecast", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "43.7", q.Get("latitude"))
		require.Equal(t, "-79.42", q.Get("longitude"))
		require.Equal(t, "fahrenheit", q.Get("temperature_unit"))
		require.Equal(t, "inch", q.Get("precipitation_unit"))
		require.Equal(t, "mph", q.Get("windspeed_unit"))
		require.Equal(t, "true", q.Get("current_weather"))
		require.Equal(t, "auto", q.Get("timezone"))

		return respond(http.StatusOK, `{
			"utc_offset_seconds": -14400,
			"current_weather": {"time":"2026-10-19T14:00","temperature":52.3,"windspeed":22.1,"winddirection":270,"weathercode":61},
			"daily": {
				"time": ["2026-10-19","2026-10-20"],
				"temperature_2m_max": [55.2, 48.1],
				"temperature_2m_min": [41.0, 35.6],
				"precipitation_sum": [0.31, 0],
				"weathercode": [61, 71],
				"windspeed_10m_max": [24.9, 12.0]
			}
		}`)
	})

	fc, err := c.Forecast(context.Background(), toronto)
	require.NoError(t, err)
	require.Equal(t, domain.ForecastSourceOpenMeteo, fc.Source)
	require.Len(t, fc.Periods, 2)

	now := fc.Current
	require.Equal(t, "Now", now.Name)
	require.InDelta(t, 52.3, now.HighF, 1e-9)
	require.InDelta(t, 22.1, now.WindMph, 1e-9)
	require.Equal(t, "W", now.WindDirection)
	require.Equal(t, "Rain", now.Summary)
	require.True(t, now.Rain)
	require.True(t, now.Start.Equal(time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)))
	require.InDelta(t, 41.0, *now.LowF, 1e-9)

	today := fc.Periods[0]
	require.Equal(t, "Today", today.Name)
	require.InDelta(t, 0.31, *today.PrecipInches, 1e-9)

	tomorrow := fc.Periods[1]
	require.Equal(t, "Tuesday", tomorrow.Name)
	require.True(t, tomorrow.Snow)
	require.InDelta(t, 35.6, *tomorrow.LowF, 1e-9)
	require.True(t, tomorrow.Start.Equal(time.Date(2026, 10, 20, 4, 0, 0, 0, time.UTC)))
}

func TestClient_Forecast_withoutCurrentWeather(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"daily":{"time":["2026-10-19"],"temperature_2m_max":[70],"weathercode":[0]}}`)
	})

	fc, err := c.Forecast(context.Background(), toronto)
	require.NoError(t, err)
	require.Equal(t, "Today", fc.Current.Name)
	require.Equal(t, "Clear sky", fc.Current.Summary)
	require.Nil(t, fc.Current.LowF)
}

func TestClient_Forecast_noData(t *testing.T) {
	for _, body := range []string{`{}`, `{"daily":{"time":[]}}`, `{"daily":{"time":["garbage"]}}`} {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return respond(http.StatusOK, body)
		})

		_, err := c.Forecast(context.Background(), toronto)
		require.ErrorIs(t, err, serrors.ErrUpstream, body)
		require.Equal(t, "no forecast data", serrors.MessageOf(err))
	}
}

func TestClient_Forecast_badRequest(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusBadRequest, `{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`)
	})

	_, err := c.Forecast(context.Background(), domain.Place{Lat: 123})
	require.ErrorIs(t, err, serrors.ErrUpstream)
	require.ErrorContains(t, err, "Latitude must be in range")
}
