package tools_test

import (
	"bus2ride/internal/tools"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func run(t *testing.T, id string, inputs map[string]any) map[string]any {
	t.Helper()

	res, err := tools.New().Run(context.Background(), id, inputs)
	require.NoError(t, err)
	require.Equal(t, id, res.ID)

	return res.Result
}

func TestTools_ListIsUniqueAndComplete(t *testing.T) {
	list := tools.New().List()
	require.Len(t, list, 16)

	seen := map[string]bool{}
	for _, s := range list {
		require.False(t, seen[s.ID], "duplicate tool %s", s.ID)
		seen[s.ID] = true
		require.NotEmpty(t, s.Title)

		// defaults alone must always produce a valid run
		_, problems := tools.Validate(s, nil)
		require.Empty(t, problems, s.ID)
	}
}

func TestTools_UnknownTool(t *testing.T) {
	_, err := tools.New().Run(context.Background(), "nope", nil)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, `unknown tool: "nope"`, serrors.MessageOf(err))

	_, err = tools.New().Schema("nope")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestTools_InvalidInputsListsEveryProblem(t *testing.T) {
	_, err := tools.New().Run(context.Background(), "overtime-risk-meter", map[string]any{
		"hoursScheduled": "lots",
		"eventType":      "Funeral",
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t,
		`invalid inputs for "Overtime Risk Meter": "Hours scheduled" must be a number. `+
			`"Event type" must be one of: Wedding, Prom, Concert, Sport.`,
		serrors.MessageOf(err))
}

func TestNormalize(t *testing.T) {
	s, err := tools.New().Schema("surge-peak-predictor")
	require.NoError(t, err)

	got := tools.Normalize(*s, map[string]any{"month": " 3 ", "extra": true})
	require.Equal(t, map[string]any{"dayOfWeek": "Fri", "month": 3.0, "eventNearby": "No"}, got)

	s, err = tools.New().Schema("pickup-point-map-link")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"address": "42"}, tools.Normalize(*s, map[string]any{"address": 42}))
}

func TestCalculators(t *testing.T) {
	tests := []struct {
		id     string
		inputs map[string]any
		want   map[string]any
	}{
		{"cost-split", map[string]any{"total": 100.0, "people": 3.0, "fees": 20.0},
			map[string]any{"per_person": 40.0, "total": 120.0}},
		{"cost-split", map[string]any{"total": 10.0, "people": 0.0},
			map[string]any{"per_person": 10.0, "total": 10.0}},
		{"return-trip-price-compare", nil,
			map[string]any{"one_way": 100.0, "wait_and_return": 200.0, "two_one_ways": 200.0}},
		{"hours-vs-mileage-optimizer", nil,
			map[string]any{"by_hours": 500.0, "by_miles": 60.0, "recommendation": "Use mileage"}},
		{"hours-vs-mileage-optimizer", map[string]any{"hours": 0.0},
			map[string]any{"by_hours": 0.0, "by_miles": 60.0, "recommendation": "Use hourly"}},
		{"pick-up-window-recommender", map[string]any{"headcount": 21.0, "eventType": "Concert"},
			map[string]any{"pickup_window_minutes": 40.0}},
		{"pick-up-window-recommender", map[string]any{"eventType": "Corporate"},
			map[string]any{"pickup_window_minutes": 20.0}},
		{"boarding-time-calculator", map[string]any{"riders": 25.0, "perRiderSec": 5.0},
			map[string]any{"seconds": 125.0, "minutes": 2.08}},
		{"event-duration-wizard", map[string]any{"event": "Corporate"},
			map[string]any{"recommended_hours": 3.0}},
		{"capacity-finder", map[string]any{"group": 12.0},
			map[string]any{"vehicle": "Stretch Limo", "capacity": 14.0}},
		{"capacity-finder", map[string]any{"group": 45.0},
			map[string]any{"vehicle": "Coach / Multiple vehicles", "capacity": 45.0}},
		{"bar-hop-time-calculator", nil,
			map[string]any{"total_minutes": 216.0, "total_hours": 3.6}},
		{"overtime-risk-meter", nil,
			map[string]any{"risk_pct": 40.0}},
		{"surge-peak-predictor", map[string]any{"dayOfWeek": "Sat", "eventNearby": "Yes"},
			map[string]any{"demand_index": 1.0}},
		{"surge-peak-predictor", map[string]any{"dayOfWeek": "Tue", "month": 1.0},
			map[string]any{"demand_index": 0.5}},
		{"off-peak-saver-finder", nil,
			map[string]any{"suggestions": []string{"Thu", "Wed", "Tue", "Mon"}}},
		{"off-peak-saver-finder", map[string]any{"preferredDay": "Fri", "flexDays": 1.0},
			map[string]any{"suggestions": []string{}}},
		{"minimum-hours-calculator", map[string]any{"vehicleType": "Coach", "isHoliday": "Yes"},
			map[string]any{"minimum_hours": 5.0}},
		{"fuel-surcharge-calculator", nil,
			map[string]any{"base_fuel": 15.0, "surcharge": 17.25}},
		{"drive-time-estimator", nil,
			map[string]any{"minutes": 24.0, "hours": 0.4}},
		{"itinerary-builder", nil,
			map[string]any{"total_minutes": 115.0, "total_hours": 1.92}},
		{"pickup-point-map-link", map[string]any{"address": "1 Main St & 2nd"},
			map[string]any{"map_url": "https://www.google.com/maps/search/?api=1&query=1+Main+St+%26+2nd"}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			require.Equal(t, tt.want, run(t, tt.id, tt.inputs))
		})
	}
}
