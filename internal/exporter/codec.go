package exporter

import (
	"fmt"
	"strconv"

	"github.com/floodstat/floodstat/internal/domain"
)

// Default artifact names inside the output directory.
const (
	RegionalFile   = "report1_regional_summary.csv"
	ContractorFile = "report2_contractor_ranking.csv"
	AnnualFile     = "report3_annual_trends.csv"
	SummaryFile    = "summary.json"
	WorkbookFile   = "reports.xlsx"
)

var (
	RegionalHeader = []string{
		"region", "main_island", "total_budget", "median_savings",
		"avg_delay", "high_delay_pct", "efficiency_score",
	}
	ContractorHeader = []string{
		"rank", "contractor", "total_cost", "num_projects", "avg_delay",
		"total_savings", "reliability_index", "risk_flag",
	}
	AnnualHeader = []string{
		"funding_year", "type_of_work", "total_projects", "avg_savings",
		"overrun_rate", "yoy_change",
	}
)

// codec maps one report row type to and from a CSV record.
type codec[T any] struct {
	header []string
	encode func(T) []string
	decode func(*fieldReader) T
}

var regionalCodec = codec[domain.RegionalTrend]{
	header: RegionalHeader,
	encode: func(r domain.RegionalTrend) []string {
		return []string{
			r.Region, r.MainIsland, formatFloat(r.TotalBudget), formatFloat(r.MedianSavings),
			formatFloat(r.AvgDelay), formatFloat(r.HighDelayPct), formatFloat(r.EfficiencyScore),
		}
	},
	decode: func(f *fieldReader) domain.RegionalTrend {
		return domain.RegionalTrend{
			Region:          f.str(0),
			MainIsland:      f.str(1),
			TotalBudget:     f.float(2),
			MedianSavings:   f.float(3),
			AvgDelay:        f.float(4),
			HighDelayPct:    f.float(5),
			EfficiencyScore: f.float(6),
		}
	},
}

var contractorCodec = codec[domain.ContractorRanking]{
	header: ContractorHeader,
	encode: func(r domain.ContractorRanking) []string {
		return []string{
			strconv.Itoa(r.Rank), r.Contractor, formatFloat(r.TotalCost), strconv.Itoa(r.NumProjects),
			formatFloat(r.AvgDelay), formatFloat(r.TotalSavings), formatFloat(r.ReliabilityIndex),
			string(r.RiskFlag),
		}
	},
	decode: func(f *fieldReader) domain.ContractorRanking {
		return domain.ContractorRanking{
			Rank:             f.int(0),
			Contractor:       f.str(1),
			TotalCost:        f.float(2),
			NumProjects:      f.int(3),
			AvgDelay:         f.float(4),
			TotalSavings:     f.float(5),
			ReliabilityIndex: f.float(6),
			RiskFlag:         domain.RiskFlag(f.str(7)),
		}
	},
}

var annualCodec = codec[domain.AnnualMetric]{
	header: AnnualHeader,
	encode: func(r domain.AnnualMetric) []string {
		return []string{
			strconv.Itoa(r.FundingYear), r.TypeOfWork, strconv.Itoa(r.TotalProjects),
			formatFloat(r.AvgSavings), formatFloat(r.OverrunRate), formatFloat(r.YoYChange),
		}
	},
	decode: func(f *fieldReader) domain.AnnualMetric {
		return domain.AnnualMetric{
			FundingYear:   f.int(0),
			TypeOfWork:    f.str(1),
			TotalProjects: f.int(2),
			AvgSavings:    f.float(3),
			OverrunRate:   f.float(4),
			YoYChange:     f.float(5),
		}
	},
}

// formatFloat writes the shortest representation that parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fieldReader decodes typed fields from one record and keeps the first
// error it hits.
type fieldReader struct {
	header []string
	record []string
	err    error
}

func (f *fieldReader) str(i int) string {
	return f.record[i]
}

func (f *fieldReader) float(i int) float64 {
	if f.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(f.record[i], 64)
	if err != nil {
		f.err = fmt.Errorf("column %s: %w", f.header[i], err)
	}
	return v
}

func (f *fieldReader) int(i int) int {
	if f.err != nil {
		return 0
	}
	v, err := strconv.Atoi(f.record[i])
	if err != nil {
		f.err = fmt.Errorf("column %s: %w", f.header[i], err)
	}
	return v
}
