package tools

import (
	"math"
	"net/url"
	"slices"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} //nolint: gochecknoglobals

func number(name, label string, def, step float64) Field {
	return Field{Name: name, Label: label, Type: FieldNumber, Default: def, Step: step}
}

func choice(name, label, def string, options ...string) Field {
	return Field{Name: name, Label: label, Type: FieldSelect, Default: def, Options: options}
}

// registry lists the calculators in display order.
var registry = []calculator{ //nolint: gochecknoglobals
	{
		schema: Schema{
			ID:          "cost-split",
			Title:       "Cost Split Calculator",
			Description: "Split total trip cost per person.",
			Fields: []Field{
				number("total", "Total cost", 100, 0.01),
				number("people", "Number of people", 2, 1),
				number("fees", "Additional fees (total)", 0, 0.01),
			},
		},
		calc: func(in values) map[string]any {
			total := in.num("total") + in.num("fees")
			people := in.count("people", 1)

			return map[string]any{"per_person": round2(total / people), "total": total}
		},
	},
	{
		schema: Schema{
			ID:          "return-trip-price-compare",
			Title:       "Return Trip Price Compare",
			Description: "Compare 1-way vs wait-and-return vs two 1-ways.",
			Fields: []Field{
				number("oneway", "1-way price", 100, 0.01),
				number("waitHourly", "Hourly wait rate", 50, 0.01),
				number("hoursWait", "Hours waiting", 2, 0.25),
			},
		},
		calc: func(in values) map[string]any {
			oneway := in.num("oneway")

			return map[string]any{
				"one_way":         oneway,
				"wait_and_return": oneway + in.num("waitHourly")*in.num("hoursWait"),
				"two_one_ways":    oneway * 2,
			}
		},
	},
	{
		schema: Schema{
			ID:          "hours-vs-mileage-optimizer",
			Title:       "Hours vs Mileage Optimizer",
			Description: "Suggest cheaper combo for hours vs mileage-driven pricing.",
			Fields: []Field{
				number("hourRate", "Hourly rate", 125, 0.01),
				number("mileageRate", "Per-mile rate", 2, 0.01),
				number("hours", "Planned hours", 4, 0.25),
				number("miles", "Planned miles", 30, 0.1),
			},
		},
		calc: func(in values) map[string]any {
			byHours := in.num("hourRate") * in.num("hours")
			byMiles := in.num("mileageRate") * in.num("miles")
			recommendation := "Use mileage"
			if byHours <= byMiles {
				recommendation = "Use hourly"
			}

			return map[string]any{
				"by_hours":       round2(byHours),
				"by_miles":       round2(byMiles),
				"recommendation": recommendation,
			}
		},
	},
	{
		schema: Schema{
			ID:          "pick-up-window-recommender",
			Title:       "Pick-Up Window Recommender",
			Description: "Suggest pickup window length based on event and headcount.",
			Fields: []Field{
				number("headcount", "Headcount", 20, 1),
				choice("eventType", "Event type", "Wedding", "Wedding", "Prom", "Concert", "Corporate"),
			},
		},
		calc: func(in values) map[string]any {
			base := map[string]float64{"Wedding": 25, "Prom": 20, "Concert": 30}[in.str("eventType")]
			if base == 0 {
				base = 15
			}
			extra := math.Ceil(in.count("headcount", 1)/20) * 5

			return map[string]any{"pickup_window_minutes": base + extra}
		},
	},
	{
		schema: Schema{
			ID:          "boarding-time-calculator",
			Title:       "Boarding Time Calculator",
			Description: "Estimate load/unload time.",
			Fields: []Field{
				number("riders", "Riders", 20, 1),
				number("perRiderSec", "Seconds per rider", 6, 0.5),
			},
		},
		calc: func(in values) map[string]any {
			seconds := in.count("riders", 0) * in.num("perRiderSec")

			return map[string]any{"seconds": seconds, "minutes": round2(seconds / 60)}
		},
	},
	{
		schema: Schema{
			ID:          "event-duration-wizard",
			Title:       "Event Duration Wizard",
			Description: "Suggest total hours by occasion.",
			Fields: []Field{
				choice("event", "Event", "Wedding", "Wedding", "Prom", "Gameday", "Birthday", "Corporate"),
			},
		},
		calc: func(in values) map[string]any {
			hours, ok := map[string]float64{"Wedding": 6, "Prom": 5, "Gameday": 4, "Birthday": 4, "Corporate": 3}[in.str("event")]
			if !ok {
				hours = 4
			}

			return map[string]any{"recommended_hours": hours}
		},
	},
	{
		schema: Schema{
			ID:          "capacity-finder",
			Title:       "Capacity Finder",
			Description: "Find vehicle size by group size.",
			Fields:      []Field{number("group", "Group size", 10, 1)},
		},
		calc: func(in values) map[string]any {
			g := in.count("group", 1)
			switch {
			case g <= 8:
				return map[string]any{"vehicle": "Sedan / SUV", "capacity": 8.0}
			case g <= 14:
				return map[string]any{"vehicle": "Stretch Limo", "capacity": 14.0}
			case g <= 30:
				return map[string]any{"vehicle": "Party Bus (30)", "capacity": 30.0}
			default:
				return map[string]any{"vehicle": "Coach / Multiple vehicles", "capacity": g}
			}
		},
	},
	{
		schema: Schema{
			ID:          "bar-hop-time-calculator",
			Title:       "Bar-Hop Time Calculator",
			Description: "Estimate dwell and travel for 3-6 stops.",
			Fields: []Field{
				number("stops", "Stops", 4, 1),
				number("dwellMin", "Avg dwell (min)", 45, 1),
				number("driveMin", "Avg drive between (min)", 12, 1),
			},
		},
		calc: func(in values) map[string]any {
			return stopTime(in.count("stops", 1), in.num("driveMin"), in.num("dwellMin"))
		},
	},
	{
		schema: Schema{
			ID:          "overtime-risk-meter",
			Title:       "Overtime Risk Meter",
			Description: "Likelihood your plan runs long; plan a buffer.",
			Fields: []Field{
				number("hoursScheduled", "Hours scheduled", 4, 0.5),
				choice("eventType", "Event type", "Wedding", "Wedding", "Prom", "Concert", "Sport"),
				number("buffer", "Planned buffer (min)", 30, 5),
			},
		},
		calc: func(in values) map[string]any {
			base, ok := map[string]float64{"Wedding": 0.35, "Prom": 0.25, "Concert": 0.4, "Sport": 0.2}[in.str("eventType")]
			if !ok {
				base = 0.1
			}
			risk := base + max(0, (in.num("hoursScheduled")-2)*0.05) - min(0.5, in.num("buffer")/60)*0.1

			return map[string]any{"risk_pct": math.Round(min(0.99, risk) * 100)}
		},
	},
	{
		schema: Schema{
			ID:          "surge-peak-predictor",
			Title:       "Surge & Peak Predictor",
			Description: "Simple demand index by date and time (heuristic).",
			Fields: []Field{
				choice("dayOfWeek", "Day of week", "Fri", weekdays...),
				number("month", "Month (1-12)", 7, 1),
				choice("eventNearby", "Nearby event?", "No", "No", "Yes"),
			},
		},
		calc: func(in values) map[string]any {
			score := 0.5
			if day := in.str("dayOfWeek"); day == "Fri" || day == "Sat" {
				score += 0.3
			}
			// summer
			if month := in.numOr("month", 1); month >= 5 && month <= 9 {
				score += 0.1
			}
			if in.str("eventNearby") == "Yes" {
				score += 0.4
			}

			return map[string]any{"demand_index": min(1, round2(score))}
		},
	},
	{
		schema: Schema{
			ID:          "off-peak-saver-finder",
			Title:       "Off-Peak Saver Finder",
			Description: "Suggest cheaper days/hours to book.",
			Fields: []Field{
				choice("preferredDay", "Preferred day", "Sat", weekdays...),
				number("flexDays", "Flexible days (+/-)", 2, 1),
			},
		},
		calc: func(in values) map[string]any {
			suggestions := make([]string, 0, 4)
			if day := in.str("preferredDay"); day == "Sat" || day == "Sun" {
				suggestions = append(suggestions, "Thu", "Wed")
			}
			if in.count("flexDays", 0) >= 2 {
				suggestions = append(suggestions, "Tue", "Mon")
			}
			suggestions = slices.Compact(suggestions)

			return map[string]any{"suggestions": suggestions[:min(4, len(suggestions))]}
		},
	},
	{
		schema: Schema{
			ID:          "minimum-hours-calculator",
			Title:       "Minimum Hours Calculator",
			Description: "Typical market minimums by vehicle/date.",
			Fields: []Field{
				choice("vehicleType", "Vehicle type", "Party Bus", "Sedan", "Limo", "Party Bus", "Coach"),
				choice("isHoliday", "Holiday?", "No", "No", "Yes"),
			},
		},
		calc: func(in values) map[string]any {
			hours, ok := map[string]float64{"Sedan": 1, "Limo": 2, "Party Bus": 3, "Coach": 4}[in.str("vehicleType")]
			if !ok {
				hours = 3
			}
			if in.str("isHoliday") == "Yes" {
				hours++
			}

			return map[string]any{"minimum_hours": hours}
		},
	},
	{
		schema: Schema{
			ID:          "fuel-surcharge-calculator",
			Title:       "Fuel Surcharge Calculator",
			Description: "Estimate fuel add-ons by distance/market.",
			Fields: []Field{
				number("miles", "Miles", 30, 0.1),
				number("mpg", "Vehicle MPG", 8, 0.1),
				number("fuelPrice", "Fuel price per gallon", 4, 0.01),
				number("markupPct", "Markup %", 15, 0.1),
			},
		},
		calc: func(in values) map[string]any {
			base := in.num("miles") / in.numOr("mpg", 1) * in.num("fuelPrice")
			total := base * (1 + in.num("markupPct")/100)

			return map[string]any{"base_fuel": round2(base), "surcharge": round2(total)}
		},
	},
	{
		schema: Schema{
			ID:          "drive-time-estimator",
			Title:       "Drive Time Estimator",
			Description: "Traffic-aware travel time between stops (heuristic).",
			Fields: []Field{
				number("miles", "Miles", 10, 0.1),
				number("avgSpeed", "Avg speed (mph)", 30, 1),
				number("trafficFactor", "Traffic factor (1=normal)", 1.2, 0.1),
			},
		},
		calc: func(in values) map[string]any {
			hours := in.num("miles") / in.numOr("avgSpeed", 30) * in.numOr("trafficFactor", 1)

			return map[string]any{"minutes": math.Round(hours * 60), "hours": round2(hours)}
		},
	},
	{
		schema: Schema{
			ID:          "itinerary-builder",
			Title:       "Itinerary Builder",
			Description: "Build simple multi-stop plan and total time.",
			Fields: []Field{
				number("stops", "Stops", 5, 1),
				number("avgDriveMin", "Avg drive between (min)", 10, 1),
				number("dwellMin", "Avg dwell per stop (min)", 15, 1),
			},
		},
		calc: func(in values) map[string]any {
			return stopTime(in.count("stops", 1), in.num("avgDriveMin"), in.num("dwellMin"))
		},
	},
	{
		schema: Schema{
			ID:          "pickup-point-map-link",
			Title:       "Pickup Point Map Link",
			Description: "Returns a map link for a pickup address.",
			Fields:      []Field{{Name: "address", Label: "Address", Type: FieldText, Default: ""}},
		},
		calc: func(in values) map[string]any {
			q := url.Values{"api": {"1"}, "query": {in.str("address")}}

			return map[string]any{"map_url": "https://www.google.com/maps/search/?" + q.Encode()}
		},
	},
}

// stopTime is the dwell at every stop plus the drives between them.
func stopTime(stops, drive, dwell float64) map[string]any {
	total := stops*dwell + (stops-1)*drive

	return map[string]any{"total_minutes": total, "total_hours": round2(total / 60)}
}
