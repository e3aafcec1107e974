package analytics

import (
	"math"

	"github.com/floodstat/floodstat/internal/domain"
)

type regionKey struct {
	region string
	island string
}

// RegionalTrends groups records by (region, main island) and returns one
// row per group, ordered by SortRegional.
func RegionalTrends(records []domain.ProjectRecord) []domain.RegionalTrend {
	groups := groupBy(records, func(r domain.ProjectRecord) regionKey {
		return regionKey{region: r.Region, island: r.MainIsland}
	})

	out := make([]domain.RegionalTrend, 0, len(groups))
	for _, g := range groups {
		median := Median(pluck(g.records, savingsOf))
		delays := collectDelays(g.records)

		out = append(out, domain.RegionalTrend{
			Region:          g.key.region,
			MainIsland:      g.key.island,
			TotalBudget:     Sum(pluck(g.records, budgetOf)),
			MedianSavings:   median,
			AvgDelay:        delays.avg,
			HighDelayPct:    delays.highPct(),
			EfficiencyScore: EfficiencyScore(median, delays.avg),
		})
	}

	SortRegional(out)
	return out
}

// EfficiencyScore is median savings per day of average delay, scaled by 100
// and clamped into [0, 100]. An average delay within DelayEpsilon of zero
// scores 0.
func EfficiencyScore(medianSavings, avgDelay float64) float64 {
	raw := 0.0
	if math.Abs(avgDelay) > domain.DelayEpsilon {
		raw = medianSavings / avgDelay * 100
	}
	return Clamp(raw, 0, domain.ScoreCap)
}
