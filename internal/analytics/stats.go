package analytics

import (
	"math"
	"sort"

	"github.com/floodstat/floodstat/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Median returns the middle value of xs, the mean of the two middle values
// for an even count, or 0 for an empty slice. xs is not modified.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// Sum returns the sum of xs.
func Sum(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(xs)
}

// Percent returns part/whole*100, or 0 when whole is 0.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Clamp bounds v into [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// delayStats summarizes the known completion delays of a group.
type delayStats struct {
	known int
	high  int
	avg   float64
}

func collectDelays(records []domain.ProjectRecord) delayStats {
	delays := make([]float64, 0, len(records))
	high := 0
	for _, r := range records {
		d, ok := r.Delay()
		if !ok {
			continue
		}
		delays = append(delays, float64(d))
		if d > domain.HighDelayThresholdDays {
			high++
		}
	}
	return delayStats{known: len(delays), high: high, avg: Mean(delays)}
}

// highPct is the share of known delays above the threshold.
func (s delayStats) highPct() float64 {
	return Percent(s.high, s.known)
}

func pluck(records []domain.ProjectRecord, f func(domain.ProjectRecord) float64) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = f(r)
	}
	return out
}

func savingsOf(r domain.ProjectRecord) float64 { return r.CostSavings }
func budgetOf(r domain.ProjectRecord) float64  { return r.ApprovedBudget }
func costOf(r domain.ProjectRecord) float64    { return r.ContractCost }
