package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/floodstat/floodstat/internal/domain"
	"github.com/floodstat/floodstat/internal/importer"
)

const scoreBarWidth = 10

// FormatLoadResult summarizes one dataset load.
func FormatLoadResult(res *importer.LoadResult) string {
	var b strings.Builder
	b.WriteString(Success(fmt.Sprintf("%d rows read, %d kept for %d-%d",
		res.TotalRows, res.Kept(), domain.MinFundingYear, domain.MaxFundingYear)))
	b.WriteString("\n")
	if res.Skipped() > 0 {
		b.WriteString(Dim(fmt.Sprintf("  skipped %d rows: %d filtered, %d failed to parse",
			res.Skipped(), res.Filtered, res.Failed)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatRegional renders the regional efficiency report.
func FormatRegional(rows []domain.RegionalTrend) string {
	cols := []Column{
		{Title: "REGION", MaxWidth: 20},
		{Title: "MAIN ISLAND", MaxWidth: 15},
		{Title: "TOTAL BUDGET", Align: AlignRight},
		{Title: "MEDIAN SAVINGS", Align: AlignRight},
		{Title: "AVG DELAY", Align: AlignRight},
		{Title: "HIGH DELAY", Align: AlignRight},
		{Title: "EFFICIENCY"},
	}
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			r.Region,
			r.MainIsland,
			FormatAmount(r.TotalBudget),
			SignedStyle(r.MedianSavings).Render(FormatAmount(r.MedianSavings)),
			FormatDays(r.AvgDelay),
			FormatPct(r.HighDelayPct),
			RenderScoreBar(r.EfficiencyScore, scoreBarWidth),
		}
	}
	return section("Regional Flood Mitigation Efficiency",
		fmt.Sprintf("Funding years %d-%d", domain.MinFundingYear, domain.MaxFundingYear),
		cols, data)
}

// FormatContractors renders the contractor ranking. Pass the slice to show,
// normally Reports.TopContractors.
func FormatContractors(rows []domain.ContractorRanking) string {
	cols := []Column{
		{Title: "#", Align: AlignRight},
		{Title: "CONTRACTOR", MaxWidth: 40},
		{Title: "TOTAL COST", Align: AlignRight},
		{Title: "PROJECTS", Align: AlignRight},
		{Title: "AVG DELAY", Align: AlignRight},
		{Title: "SAVINGS", Align: AlignRight},
		{Title: "RELIABILITY", Align: AlignRight},
		{Title: "RISK"},
	}
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			strconv.Itoa(r.Rank),
			r.Contractor,
			FormatAmount(r.TotalCost),
			strconv.Itoa(r.NumProjects),
			FormatDays(r.AvgDelay),
			SignedStyle(r.TotalSavings).Render(FormatAmount(r.TotalSavings)),
			strconv.FormatFloat(r.ReliabilityIndex, 'f', 2, 64),
			RiskIndicator(r.RiskFlag),
		}
	}
	return section("Top Contractors Performance Ranking",
		fmt.Sprintf("Top %d by total contract cost, at least %d projects",
			domain.TopContractorLimit, domain.MinContractorProjects),
		cols, data)
}

// FormatAnnual renders the annual overrun trends report.
func FormatAnnual(rows []domain.AnnualMetric) string {
	cols := []Column{
		{Title: "YEAR", Align: AlignRight},
		{Title: "TYPE OF WORK", MaxWidth: 45},
		{Title: "PROJECTS", Align: AlignRight},
		{Title: "AVG SAVINGS", Align: AlignRight},
		{Title: "OVERRUN RATE", Align: AlignRight},
		{Title: "YOY CHANGE", Align: AlignRight},
	}
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			strconv.Itoa(r.FundingYear),
			r.TypeOfWork,
			strconv.Itoa(r.TotalProjects),
			SignedStyle(r.AvgSavings).Render(FormatAmount(r.AvgSavings)),
			FormatPct(r.OverrunRate),
			SignedStyle(r.YoYChange).Render(FormatPct(r.YoYChange)),
		}
	}
	return section("Annual Project Type Cost Overrun Trends",
		"Grouped by funding year and type of work", cols, data)
}

// FormatSummary renders the digest in a box.
func FormatSummary(s domain.SummaryDigest) string {
	lines := []string{
		fmt.Sprintf("%s %d", Dim("Projects analyzed:"), s.TotalProjects),
		fmt.Sprintf("%s %s", Dim("Budget analyzed:  "), FormatAmount(s.TotalBudget)),
		fmt.Sprintf("%s %s days", Dim("Global avg delay: "), FormatDays(s.GlobalAvgDelay)),
		fmt.Sprintf("%s %d", Dim("Contractors:      "), s.TotalContractors),
		fmt.Sprintf("%s %d", Dim("Regions:          "), s.TotalRegions),
	}
	return RenderBox("Summary", strings.Join(lines, "\n"))
}

// FormatReports renders every report followed by the list of written files.
func FormatReports(r *domain.Reports, files []string) string {
	parts := []string{
		FormatRegional(r.Regional),
		FormatContractors(r.TopContractors()),
		FormatAnnual(r.Annual),
		FormatSummary(r.Summary),
	}
	if len(files) > 0 {
		var b strings.Builder
		b.WriteString(Success("Reports saved:"))
		for _, f := range files {
			b.WriteString("\n  " + Dim(f))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func section(title, subtitle string, cols []Column, rows [][]string) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(Dim(subtitle))
	b.WriteString("\n\n")
	if len(rows) == 0 {
		b.WriteString(Dim("(no rows)"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(RenderTable(cols, rows))
	return b.String()
}
