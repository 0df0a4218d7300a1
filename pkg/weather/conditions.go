package weather

import (
	"math"
	"strings"
)

var compassPoints = [...]string{ //nolint: gochecknoglobals
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Compass converts a wind direction in degrees to a 16-point compass label.
func Compass(degrees float64) string {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	i := int(math.Round(d/22.5)) % len(compassPoints)

	return compassPoints[i]
}

// Condition is a human readable summary of a WMO weather code.
type Condition struct {
	Summary string
	Rain    bool
	Snow    bool
}

// DescribeWMO maps a WMO 4677 weather interpretation code, as returned by
// Open-Meteo, to a Condition.
func DescribeWMO(code int) Condition {
	switch {
	case code == 0:
		return Condition{Summary: "Clear sky"}
	case code == 1:
		return Condition{Summary: "Mainly clear"}
	case code == 2:
		return Condition{Summary: "Partly cloudy"}
	case code == 3:
		return Condition{Summary: "Overcast"}
	case code == 45 || code == 48:
		return Condition{Summary: "Fog"}
	case code >= 51 && code <= 57:
		return Condition{Summary: "Drizzle", Rain: true}
	case code >= 61 && code <= 67:
		return Condition{Summary: "Rain", Rain: true}
	case code >= 71 && code <= 77:
		return Condition{Summary: "Snow", Snow: true}
	case code >= 80 && code <= 82:
		return Condition{Summary: "Rain showers", Rain: true}
	case code == 85 || code == 86:
		return Condition{Summary: "Snow showers", Snow: true}
	case code >= 95 && code <= 99:
		return Condition{Summary: "Thunderstorm", Rain: true}
	default:
		return Condition{Summary: "Unknown"}
	}
}

// DescribeText classifies a free-text forecast such as NWS's shortForecast.
func DescribeText(text string) Condition {
	t := strings.ToLower(text)

	return Condition{
		Summary: text,
		Rain:    strings.Contains(t, "rain") || strings.Contains(t, "shower") || strings.Contains(t, "thunderstorm"),
		Snow:    strings.Contains(t, "snow") || strings.Contains(t, "flurries") || strings.Contains(t, "sleet"),
	}
}

// CelsiusToFahrenheit converts temperatures reported in metric units.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
