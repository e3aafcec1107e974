package analytics

import "github.com/floodstat/floodstat/internal/domain"

// Summarize builds the dataset digest. contractors must be the full ranked
// list, not the exported top slice.
func Summarize(records []domain.ProjectRecord, contractors []domain.ContractorRanking) domain.SummaryDigest {
	regions := make(map[string]struct{})
	for _, r := range records {
		regions[r.Region] = struct{}{}
	}

	return domain.SummaryDigest{
		TotalProjects:    len(records),
		TotalBudget:      Sum(pluck(records, budgetOf)),
		GlobalAvgDelay:   collectDelays(records).avg,
		TotalContractors: len(contractors),
		TotalRegions:     len(regions),
	}
}
