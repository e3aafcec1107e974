package analytics

import (
	"testing"

	"github.com/floodstat/floodstat/internal/domain"
	"github.com/floodstat/floodstat/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	workDrainage = "Construction of Drainage"
	workRevet    = "Revetment"
)

func TestAnnualPerformance_YoY(t *testing.T) {
	records := []domain.ProjectRecord{
		testutil.NewTestRecord(testutil.InYear(2021, workDrainage), testutil.Costing(1000, 900)),
		testutil.NewTestRecord(testutil.InYear(2022, workDrainage), testutil.Costing(1000, 850)),
		testutil.NewTestRecord(testutil.InYear(2022, workRevet), testutil.Costing(1000, 1100)),
		testutil.NewTestRecord(testutil.InYear(2023, workRevet), testutil.Costing(1000, 900)),
	}

	got := AnnualPerformance(records)

	want := []domain.AnnualMetric{
		{FundingYear: 2021, TypeOfWork: workDrainage, TotalProjects: 1, AvgSavings: 100, OverrunRate: 0, YoYChange: 0},
		{FundingYear: 2022, TypeOfWork: workDrainage, TotalProjects: 1, AvgSavings: 150, OverrunRate: 0, YoYChange: 50},
		// no 2021 revetment group, so no baseline
		{FundingYear: 2022, TypeOfWork: workRevet, TotalProjects: 1, AvgSavings: -100, OverrunRate: 100, YoYChange: 0},
		// (100 - -100) / |-100| * 100
		{FundingYear: 2023, TypeOfWork: workRevet, TotalProjects: 1, AvgSavings: 100, OverrunRate: 0, YoYChange: 200},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("AnnualPerformance mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnualPerformance_BaselineYearAlwaysZero(t *testing.T) {
	got := AnnualPerformance([]domain.ProjectRecord{
		testutil.NewTestRecord(testutil.InYear(2021, workDrainage), testutil.Costing(1000, 500)),
	})
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].YoYChange)
}

func TestAnnualPerformance_ZeroPrior(t *testing.T) {
	records := []domain.ProjectRecord{
		testutil.NewTestRecord(testutil.InYear(2022, workDrainage), testutil.Costing(1000, 1000)),
		testutil.NewTestRecord(testutil.InYear(2023, workDrainage), testutil.Costing(1000, 900)),
	}

	got := AnnualPerformance(records)

	require.Len(t, got, 2)
	assert.Equal(t, 2023, got[1].FundingYear)
	assert.Equal(t, 100.0, got[1].YoYChange)
}

func TestAnnualPerformance_OverrunRate(t *testing.T) {
	records := []domain.ProjectRecord{
		testutil.NewTestRecord(testutil.InYear(2022, workDrainage), testutil.Costing(1000, 1001)),
		testutil.NewTestRecord(testutil.InYear(2022, workDrainage), testutil.Costing(1000, 1000)),
		testutil.NewTestRecord(testutil.InYear(2022, workDrainage), testutil.Costing(1000, 999)),
		testutil.NewTestRecord(testutil.InYear(2022, workDrainage), testutil.Costing(1000, 2000)),
	}

	got := AnnualPerformance(records)

	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].TotalProjects)
	assert.Equal(t, 50.0, got[0].OverrunRate)
}

func TestAnnualPerformance_OrderWithinYear(t *testing.T) {
	records := []domain.ProjectRecord{
		testutil.NewTestRecord(testutil.InYear(2023, "B"), testutil.Costing(1000, 900)),
		testutil.NewTestRecord(testutil.InYear(2022, "A"), testutil.Costing(1000, 990)),
		testutil.NewTestRecord(testutil.InYear(2022, "C"), testutil.Costing(1000, 500)),
		testutil.NewTestRecord(testutil.InYear(2022, "B"), testutil.Costing(1000, 500)),
	}

	got := AnnualPerformance(records)

	keys := make([]string, len(got))
	for i, m := range got {
		keys[i] = m.TypeOfWork
	}
	assert.Equal(t, []string{"B", "C", "A", "B"}, keys)
	assert.Equal(t, 2023, got[3].FundingYear)
}

func TestYoYChange(t *testing.T) {
	assert.Equal(t, 100.0, YoYChange(5, 0))
	assert.Equal(t, 0.0, YoYChange(0, 0))
	assert.Equal(t, 0.0, YoYChange(-5, 0))
	assert.Equal(t, -50.0, YoYChange(50, 100))
	assert.Equal(t, 50.0, YoYChange(-50, -100))
}
