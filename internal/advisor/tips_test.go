package advisor_test

import (
	"bus2ride/internal/advisor"
	"bus2ride/pkg/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func hasTip(tips []string, prefix string) bool {
	for _, t := range tips {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}

	return false
}

func TestTips(t *testing.T) {
	tests := []struct {
		name string
		p    domain.ForecastPeriod
		want []string
		not  []string
	}{
		{
			name: "mild and dry",
			p:    domain.ForecastPeriod{HighF: 70, WindMph: 5},
			want: []string{"Mild day"},
			not:  []string{"Rainy day", "Hot day", "Cold day", "Windy"},
		},
		{
			name: "mild but rainy",
			p:    domain.ForecastPeriod{HighF: 60, Rain: true},
			want: []string{"Rainy day", "Chance of rain?"},
			not:  []string{"Mild day"},
		},
		{
			name: "hot and windy",
			p:    domain.ForecastPeriod{HighF: 95, WindMph: 25},
			want: []string{"Hot day", "Windy"},
			not:  []string{"Mild day", "Cold day"},
		},
		{
			name: "cold and snowy",
			p:    domain.ForecastPeriod{HighF: 28, Snow: true},
			want: []string{"Snowy day", "Cold day"},
			not:  []string{"Mild day", "Hot day"},
		},
		{
			name: "thresholds are exclusive",
			p:    domain.ForecastPeriod{HighF: 85, WindMph: 20},
			want: []string{"Mild day"},
			not:  []string{"Hot day", "Windy"},
		},
		{
			name: "lower threshold is mild",
			p:    domain.ForecastPeriod{HighF: 45},
			want: []string{"Mild day"},
			not:  []string{"Cold day"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tips := advisor.Tips(tt.p)
			for _, w := range tt.want {
				require.True(t, hasTip(tips, w), "missing %q in %v", w, tips)
			}
			for _, n := range tt.not {
				require.False(t, hasTip(tips, n), "unexpected %q in %v", n, tips)
			}
		})
	}
}
