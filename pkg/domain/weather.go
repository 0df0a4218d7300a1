package domain

import "time"

// Place is a geocoded city.
type Place struct {
	Name        string  `json:"name"`
	Admin1      string  `json:"admin1,omitempty"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// InUS reports whether the national weather service covers the place.
func (p Place) InUS() bool {
	return p.CountryCode == "US" || p.Country == "United States"
}

// ForecastPeriod is a day (or NWS half-day) of forecast.
type ForecastPeriod struct {
	Name          string    `json:"name"`
	Start         time.Time `json:"start"`
	HighF         float64   `json:"highF"`
	LowF          *float64  `json:"lowF,omitempty"`
	PrecipInches  *float64  `json:"precipInches,omitempty"`
	WindMph       float64   `json:"windMph"`
	WindDirection string    `json:"windDirection,omitempty"`
	Summary       string    `json:"summary"`
	Rain          bool      `json:"rain"`
	Snow          bool      `json:"snow"`
}

// ForecastSource names the upstream that produced a forecast.
type ForecastSource string

const (
	ForecastSourceNWS       ForecastSource = "nws"
	ForecastSourceOpenMeteo ForecastSource = "open-meteo"
)

// Forecast is the resolved place plus upcoming periods. Current is the first
// period or the live reading when the source has one.
type Forecast struct {
	Place   Place            `json:"place"`
	Source  ForecastSource   `json:"source"`
	Current ForecastPeriod   `json:"current"`
	Periods []ForecastPeriod `json:"periods"`
}

// Advisory is what the weather widget renders: a forecast with packing tips,
// or an error message. Exactly one of Forecast and Error is set.
type Advisory struct {
	Forecast *Forecast `json:"forecast,omitempty"`
	Tips     []string  `json:"tips,omitempty"`
	Error    string    `json:"error,omitempty"`
}
