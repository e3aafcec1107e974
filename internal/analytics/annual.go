package analytics

import (
	"math"

	"github.com/floodstat/floodstat/internal/domain"
)

type annualKey struct {
	year       int
	typeOfWork string
}

// AnnualPerformance groups records by (funding year, type of work) and
// compares each group's average savings with the same type of work in the
// previous year.
func AnnualPerformance(records []domain.ProjectRecord) []domain.AnnualMetric {
	groups := groupBy(records, func(r domain.ProjectRecord) annualKey {
		return annualKey{year: r.FundingYear, typeOfWork: r.TypeOfWork}
	})

	out := make([]domain.AnnualMetric, 0, len(groups))
	avgSavings := make(map[annualKey]float64, len(groups))
	for _, g := range groups {
		overruns := 0
		for _, r := range g.records {
			if r.IsOverrun() {
				overruns++
			}
		}
		avg := Mean(pluck(g.records, savingsOf))
		avgSavings[g.key] = avg

		out = append(out, domain.AnnualMetric{
			FundingYear:   g.key.year,
			TypeOfWork:    g.key.typeOfWork,
			TotalProjects: len(g.records),
			AvgSavings:    avg,
			OverrunRate:   Percent(overruns, len(g.records)),
		})
	}

	// The lookup is complete before any row reads from it.
	for i := range out {
		m := &out[i]
		if m.FundingYear == domain.MinFundingYear {
			continue
		}
		prior, ok := avgSavings[annualKey{year: m.FundingYear - 1, typeOfWork: m.TypeOfWork}]
		if !ok {
			continue
		}
		m.YoYChange = YoYChange(m.AvgSavings, prior)
	}

	SortAnnual(out)
	return out
}

// YoYChange is the percentage change from prior to current relative to
// |prior|. A prior of exactly 0 yields 100 when current is positive and 0
// otherwise.
func YoYChange(current, prior float64) float64 {
	if prior == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - prior) / math.Abs(prior) * 100
}
