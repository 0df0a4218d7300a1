package advisor

import "bus2ride/pkg/domain"

const (
	// HotAboveF and ColdBelowF bound a mild day.
	HotAboveF  = 85
	ColdBelowF = 45
	// WindyAboveMph triggers the wind tips.
	WindyAboveMph = 20
)

// Tips returns packing tips for riders given the conditions of one period.
// A mild day only gets mild tips when it is also dry.
func Tips(p domain.ForecastPeriod) []string {
	var tips []string
	if p.Rain {
		tips = append(tips,
			"Rainy day: bring an umbrella, ponchos and plastic bags for wet shoes.",
			"Chance of rain? We put a towel down at the bus entry to avoid slippery floors.")
	}
	if p.Snow {
		tips = append(tips,
			"Snowy day: wear waterproof boots and warm layers.",
			"Allow extra time for pickup, roads may be slow.")
	}
	switch {
	case p.HighF > HotAboveF:
		tips = append(tips,
			"Hot day: pack sunscreen, hats and extra water.",
			"Wear light-colored, breathable clothing.")
	case p.HighF < ColdBelowF:
		tips = append(tips,
			"Cold day: bring gloves, scarves and blankets.",
			"Wear thermal layers and wool socks.")
	case !p.Rain && !p.Snow:
		tips = append(tips,
			"Mild day: dress comfortably and check for sudden weather changes.",
			"Pack a light jacket and a reusable water bottle.")
	}
	if p.WindMph > WindyAboveMph {
		tips = append(tips, "Windy: consider a windbreaker and secure loose items.")
	}

	return tips
}
