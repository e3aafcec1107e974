package analytics

import (
	"testing"

	"github.com/floodstat/floodstat/internal/domain"
	"github.com/floodstat/floodstat/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestRegionalTrends_TwoRecordExample(t *testing.T) {
	records := []domain.ProjectRecord{
		testutil.NewTestRecord(testutil.Costing(1000, 800), testutil.Delayed(10)),
		testutil.NewTestRecord(testutil.Costing(500, 600), testutil.Delayed(50)),
	}

	got := RegionalTrends(records)

	want := []domain.RegionalTrend{{
		Region:          "Region I",
		MainIsland:      "Luzon",
		TotalBudget:     1500,
		MedianSavings:   50,
		AvgDelay:        30,
		HighDelayPct:    50,
		EfficiencyScore: 100,
	}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("RegionalTrends mismatch (-want +got):\n%s", diff)
	}
}

func TestRegionalTrends_GroupsByRegionAndIsland(t *testing.T) {
	records := []domain.ProjectRecord{
		testutil.NewTestRecord(testutil.InRegion("Region I", "Luzon")),
		testutil.NewTestRecord(testutil.InRegion("Region I", "Visayas")),
		testutil.NewTestRecord(testutil.InRegion("Region I", "Luzon")),
	}

	got := RegionalTrends(records)

	require.Len(t, got, 2)
	for _, row := range got {
		switch row.MainIsland {
		case "Luzon":
			assert.Equal(t, 2000.0, row.TotalBudget)
		case "Visayas":
			assert.Equal(t, 1000.0, row.TotalBudget)
		default:
			t.Fatalf("unexpected island %q", row.MainIsland)
		}
	}
}

func TestRegionalTrends_ZeroDelayScoresZero(t *testing.T) {
	got := RegionalTrends([]domain.ProjectRecord{
		testutil.NewTestRecord(testutil.Costing(1000, 100), testutil.NoDelay()),
	})

	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].AvgDelay)
	assert.Equal(t, 0.0, got[0].EfficiencyScore)
}

func TestRegionalTrends_EmptyInput(t *testing.T) {
	assert.Empty(t, RegionalTrends(nil))
}

func TestRegionalTrends_OrderedByEfficiencyThenName(t *testing.T) {
	records := []domain.ProjectRecord{
		// median savings 0, efficiency 0
		testutil.NewTestRecord(testutil.InRegion("Region B", "Luzon"), testutil.Costing(100, 100)),
		// median 5, delay 10 -> 50
		testutil.NewTestRecord(testutil.InRegion("Region C", "Luzon"), testutil.Costing(100, 95)),
		// ties with Region B on efficiency 0
		testutil.NewTestRecord(testutil.InRegion("Region A", "Luzon"), testutil.Costing(100, 100)),
	}

	got := RegionalTrends(records)

	require.Len(t, got, 3)
	assert.Equal(t, "Region C", got[0].Region)
	assert.Equal(t, 50.0, got[0].EfficiencyScore)
	assert.Equal(t, "Region A", got[1].Region)
	assert.Equal(t, "Region B", got[2].Region)
}

func TestEfficiencyScore(t *testing.T) {
	tests := []struct {
		name   string
		median float64
		delay  float64
		want   float64
	}{
		{"within bounds", 5, 10, 50},
		{"capped", 50, 30, 100},
		{"negative savings floored", -50, 30, 0},
		{"negative delay floored", 50, -10, 0},
		{"delay under epsilon", 50, 0.0005, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EfficiencyScore(tt.median, tt.delay)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}
