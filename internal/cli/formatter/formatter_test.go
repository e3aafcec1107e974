package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/floodstat/floodstat/internal/domain"
	"github.com/floodstat/floodstat/internal/importer"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{
		0:          "0.00",
		12.5:       "12.50",
		999.999:    "1,000.00",
		1000:       "1,000.00",
		1234567.8:  "1,234,567.80",
		-98765.432: "-98,765.43",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatAmount(in), "FormatAmount(%v)", in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab…", Truncate("abcd", 3))
	assert.Equal(t, "…", Truncate("abcd", 1))
	assert.Equal(t, "Ñañ…", Truncate("Ñañaña", 4))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]Column{{Title: "NAME"}, {Title: "N", Align: AlignRight}},
		[][]string{{"alpha", "1"}, {"b", "100"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	assert.True(t, strings.HasSuffix(lines[2], "  1"))
	assert.True(t, strings.HasSuffix(lines[3], "100"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderScoreBar(t *testing.T) {
	assert.Contains(t, RenderScoreBar(100, 10), "100.00")
	assert.Contains(t, RenderScoreBar(0, 10), "  0.00")
	assert.Contains(t, RenderScoreBar(-20, 4), "░░░░")
}

func TestFormatRegional(t *testing.T) {
	out := FormatRegional([]domain.RegionalTrend{{
		Region: "Region I", MainIsland: "Luzon", TotalBudget: 1500,
		MedianSavings: 50, AvgDelay: 30, HighDelayPct: 50, EfficiencyScore: 100,
	}})

	assert.Contains(t, out, "REGIONAL FLOOD MITIGATION EFFICIENCY")
	assert.Contains(t, out, "Region I")
	assert.Contains(t, out, "1,500.00")
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "30.0")
}

func TestFormatContractors_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("Construction ", 6)
	out := FormatContractors([]domain.ContractorRanking{{
		Rank: 1, Contractor: long, TotalCost: 4500, NumProjects: 5, RiskFlag: domain.RiskHigh,
	}})

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "High Risk")
}

func TestFormatAnnual_Empty(t *testing.T) {
	out := FormatAnnual(nil)
	assert.Contains(t, out, "(no rows)")
}

func TestFormatLoadResult(t *testing.T) {
	res := &importer.LoadResult{
		Dataset:   domain.NewDataset("x.csv", make([]domain.ProjectRecord, 7)),
		TotalRows: 10,
		Filtered:  2,
		Failed:    1,
	}

	out := FormatLoadResult(res)
	assert.Contains(t, out, "10 rows read, 7 kept for 2021-2023")
	assert.Contains(t, out, "2 filtered, 1 failed")
}

func TestFormatReports_ListsFiles(t *testing.T) {
	out := FormatReports(&domain.Reports{Summary: domain.SummaryDigest{TotalProjects: 2}}, []string{"out/summary.json"})

	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "Projects analyzed:")
	assert.Contains(t, out, "out/summary.json")
}
