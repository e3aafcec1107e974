package analytics

import (
	"math"

	"github.com/floodstat/floodstat/internal/domain"
)

// ContractorRankings returns every contractor with at least
// MinContractorProjects records, ranked by total contract cost.
func ContractorRankings(records []domain.ProjectRecord) []domain.ContractorRanking {
	groups := groupBy(records, func(r domain.ProjectRecord) string { return r.Contractor })

	var out []domain.ContractorRanking
	for _, g := range groups {
		if len(g.records) < domain.MinContractorProjects {
			continue
		}
		totalCost := Sum(pluck(g.records, costOf))
		totalSavings := Sum(pluck(g.records, savingsOf))
		avgDelay := collectDelays(g.records).avg
		index := ReliabilityIndex(avgDelay, totalSavings, totalCost)

		out = append(out, domain.ContractorRanking{
			Contractor:       g.key,
			TotalCost:        totalCost,
			NumProjects:      len(g.records),
			AvgDelay:         avgDelay,
			TotalSavings:     totalSavings,
			ReliabilityIndex: index,
			RiskFlag:         domain.RiskFlagFor(index),
		})
	}

	SortContractors(out)
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// ReliabilityIndex combines a delay factor (1 - avgDelay/90) with a savings
// factor (totalSavings/totalCost), scaled by 100 and capped at 100. There is
// no floor. A total cost of exactly 0 is treated as 1.
func ReliabilityIndex(avgDelay, totalSavings, totalCost float64) float64 {
	if totalCost == 0 {
		totalCost = 1
	}
	delayFactor := 1 - avgDelay/domain.ReliabilityDelayDays
	savingsFactor := totalSavings / totalCost
	return math.Min(delayFactor*savingsFactor*100, domain.ScoreCap)
}
