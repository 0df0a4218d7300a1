package weather_test

import (
	"bus2ride/pkg/weather"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompass(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{11, "N"},
		{12, "NNE"},
		{90, "E"},
		{180, "S"},
		{225, "SW"},
		{348, "NNW"},
		{355, "N"},
		{360, "N"},
		{-90, "W"},
		{450, "E"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, weather.Compass(tt.deg), tt.deg)
	}
}

func TestDescribeWMO(t *testing.T) {
	require.Equal(t, weather.Condition{Summary: "Clear sky"}, weather.DescribeWMO(0))
	require.Equal(t, weather.Condition{Summary: "Fog"}, weather.DescribeWMO(48))
	require.True(t, weather.DescribeWMO(53).Rain)
	require.True(t, weather.DescribeWMO(63).Rain)
	require.True(t, weather.DescribeWMO(81).Rain)
	require.True(t, weather.DescribeWMO(95).Rain)
	require.True(t, weather.DescribeWMO(73).Snow)
	require.True(t, weather.DescribeWMO(86).Snow)
	require.False(t, weather.DescribeWMO(86).Rain)
	require.Equal(t, "Unknown", weather.DescribeWMO(42).Summary)
}

func TestDescribeText(t *testing.T) {
	c := weather.DescribeText("Chance Rain Showers")
	require.True(t, c.Rain)
	require.False(t, c.Snow)
	require.Equal(t, "Chance Rain Showers", c.Summary)

	c = weather.DescribeText("Light Snow Likely")
	require.True(t, c.Snow)
	require.False(t, c.Rain)

	c = weather.DescribeText("Sunny")
	require.False(t, c.Rain)
	require.False(t, c.Snow)
}

func TestCelsiusToFahrenheit(t *testing.T) {
	require.InDelta(t, 32.0, weather.CelsiusToFahrenheit(0), 1e-9)
	require.InDelta(t, 212.0, weather.CelsiusToFahrenheit(100), 1e-9)
	require.InDelta(t, -40.0, weather.CelsiusToFahrenheit(-40), 1e-9)
}
