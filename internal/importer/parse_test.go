package importer

import (
	"testing"
	"time"

	"github.com/floodstat/floodstat/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow_Valid(t *testing.T) {
	row := testutil.NewRow(
		testutil.WithRegion("  Region I ", " Luzon"),
		testutil.WithContractor(" Acme Builders "),
		testutil.WithAmounts(" 1,234,567.50 ", "1,000,000"),
	)

	rec, outcome, err := ParseRow(row, DefaultLayout())
	require.NoError(t, err)
	require.Equal(t, RowKept, outcome)

	assert.Equal(t, "Region I", rec.Region)
	assert.Equal(t, "Luzon", rec.MainIsland)
	assert.Equal(t, "Acme Builders", rec.Contractor)
	assert.Equal(t, 2022, rec.FundingYear)
	assert.Equal(t, "Construction of Flood Mitigation Structure", rec.TypeOfWork)
	assert.InDelta(t, 1234567.50, rec.ApprovedBudget, 1e-9)
	assert.InDelta(t, 1000000.0, rec.ContractCost, 1e-9)
	assert.InDelta(t, 234567.50, rec.CostSavings, 1e-9)

	delay, ok := rec.Delay()
	require.True(t, ok)
	assert.Equal(t, 40, delay)
}

func TestParseRow_BlankFieldAnywhereIsFiltered(t *testing.T) {
	// Column 3 is never read by the parser, but the gate covers every column.
	for _, idx := range []int{0, 3, 9, 11, 16} {
		row := testutil.NewRow(testutil.WithCol(idx, "   "))
		_, outcome, err := ParseRow(row, DefaultLayout())
		assert.NoError(t, err, "col %d", idx)
		assert.Equal(t, RowFiltered, outcome, "col %d", idx)
	}
}

func TestParseRow_BlankGateBeatsBadAmount(t *testing.T) {
	row := testutil.NewRow(testutil.WithAmounts("not-a-number", "1"), testutil.WithCol(5, ""))
	_, outcome, err := ParseRow(row, DefaultLayout())
	assert.NoError(t, err)
	assert.Equal(t, RowFiltered, outcome)
}

func TestParseRow_YearWindow(t *testing.T) {
	cases := []struct {
		year int
		want RowOutcome
	}{
		{2020, RowFiltered},
		{2021, RowKept},
		{2022, RowKept},
		{2023, RowKept},
		{2024, RowFiltered},
	}
	for _, tc := range cases {
		_, outcome, _ := ParseRow(testutil.NewRow(testutil.WithYear(tc.year)), DefaultLayout())
		assert.Equal(t, tc.want, outcome, "year %d", tc.year)
	}
}

func TestParseRow_OutOfWindowSkipsAmountParsing(t *testing.T) {
	row := testutil.NewRow(testutil.WithYear(2019), testutil.WithAmounts("abc", "def"))
	_, outcome, err := ParseRow(row, DefaultLayout())
	assert.NoError(t, err)
	assert.Equal(t, RowFiltered, outcome)
}

func TestParseRow_NonNumericYearFails(t *testing.T) {
	row := testutil.NewRow(testutil.WithCol(9, "FY2022"))
	_, outcome, err := ParseRow(row, DefaultLayout())
	assert.Equal(t, RowFailed, outcome)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestParseRow_NonNumericAmountFails(t *testing.T) {
	row := testutil.NewRow(testutil.WithAmounts("1,000", "n/a"))
	_, outcome, err := ParseRow(row, DefaultLayout())
	assert.Equal(t, RowFailed, outcome)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Contains(t, err.Error(), "contract cost")
}

func TestParseRow_NegativeAmountFails(t *testing.T) {
	row := testutil.NewRow(testutil.WithAmounts("-5", "1"))
	_, outcome, err := ParseRow(row, DefaultLayout())
	assert.Equal(t, RowFailed, outcome)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestParseRow_OverrunGivesNegativeSavings(t *testing.T) {
	row := testutil.NewRow(testutil.WithAmounts("500", "600"))
	rec, outcome, err := ParseRow(row, DefaultLayout())
	require.NoError(t, err)
	require.Equal(t, RowKept, outcome)
	assert.Equal(t, -100.0, rec.CostSavings)
}

func TestParseRow_BadDateLeavesDelayUnknown(t *testing.T) {
	for _, dates := range [][2]string{
		{"01/02/2022", "2022-03-01"},
		{"2022-01-01", "March 1"},
		{"2022-13-01", "2022-03-01"},
	} {
		row := testutil.NewRow(testutil.WithDates(dates[0], dates[1]))
		rec, outcome, err := ParseRow(row, DefaultLayout())
		require.NoError(t, err)
		require.Equal(t, RowKept, outcome)
		_, ok := rec.Delay()
		assert.False(t, ok, "dates %v", dates)
	}
}

func TestParseRow_ExcelSerialDates(t *testing.T) {
	// 44562 is 2022-01-01 in the 1900 date system.
	row := testutil.NewRow(testutil.WithDates("44562", "44572.75"))
	rec, outcome, err := ParseRow(row, DefaultLayout())
	require.NoError(t, err)
	require.Equal(t, RowKept, outcome)

	days, ok := rec.Delay()
	require.True(t, ok)
	assert.Equal(t, 10, days)

	start := parseDate("44562")
	require.NotNil(t, start)
	assert.Equal(t, "2022-01-01", start.Format(time.DateOnly))
	assert.Nil(t, parseDate("0"))
}

func TestParseRow_NegativeDelayIsKept(t *testing.T) {
	row := testutil.NewRow(testutil.WithDates("2022-03-01", "2022-02-01"))
	rec, _, err := ParseRow(row, DefaultLayout())
	require.NoError(t, err)
	d, ok := rec.Delay()
	require.True(t, ok)
	assert.Equal(t, -28, d)
}

func TestParseRow_ShortRow(t *testing.T) {
	full := testutil.NewRow()

	// Missing optional trailing columns: no start date, so delay unknown.
	rec, outcome, err := ParseRow(full[:15], DefaultLayout())
	require.NoError(t, err)
	require.Equal(t, RowKept, outcome)
	_, ok := rec.Delay()
	assert.False(t, ok)

	// Missing a required column.
	_, outcome, err = ParseRow(full[:12], DefaultLayout())
	assert.Equal(t, RowFailed, outcome)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount(" 12,345.67 ")
	require.NoError(t, err)
	assert.InDelta(t, 12345.67, v, 1e-9)

	_, err = ParseAmount("NaN")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRowOutcome_String(t *testing.T) {
	assert.Equal(t, "kept", RowKept.String())
	assert.Equal(t, "filtered", RowFiltered.String())
	assert.Equal(t, "failed", RowFailed.String())
}
