package analytics

import (
	"sort"

	"github.com/floodstat/floodstat/internal/domain"
)

// SortRegional orders regional rows by:
// 1. Efficiency score: higher first
// 2. Region: lexical ascending
// 3. Main island: lexical ascending
func SortRegional(rows []domain.RegionalTrend) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.EfficiencyScore != b.EfficiencyScore {
			return a.EfficiencyScore > b.EfficiencyScore
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		return a.MainIsland < b.MainIsland
	})
}

// SortContractors orders contractor rows by:
// 1. Total contract cost: higher first
// 2. Contractor name: lexical ascending
func SortContractors(rows []domain.ContractorRanking) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.TotalCost != b.TotalCost {
			return a.TotalCost > b.TotalCost
		}
		return a.Contractor < b.Contractor
	})
}

// SortAnnual orders annual rows by:
// 1. Funding year: ascending
// 2. Average savings: higher first
// 3. Type of work: lexical ascending
func SortAnnual(rows []domain.AnnualMetric) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.FundingYear != b.FundingYear {
			return a.FundingYear < b.FundingYear
		}
		if a.AvgSavings != b.AvgSavings {
			return a.AvgSavings > b.AvgSavings
		}
		return a.TypeOfWork < b.TypeOfWork
	})
}
