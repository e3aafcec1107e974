package domain

// RegionalTrend is one row of the regional flood mitigation report.
type RegionalTrend struct {
	Region          string
	MainIsland      string
	TotalBudget     float64
	MedianSavings   float64
	AvgDelay        float64
	HighDelayPct    float64
	EfficiencyScore float64
}

// ContractorRanking is one row of the contractor performance ranking.
type ContractorRanking struct {
	Rank             int
	Contractor       string
	TotalCost        float64
	NumProjects      int
	AvgDelay         float64
	TotalSavings     float64
	ReliabilityIndex float64
	RiskFlag         RiskFlag
}

// AnnualMetric is one row of the annual cost overrun trends report.
type AnnualMetric struct {
	FundingYear   int
	TypeOfWork    string
	TotalProjects int
	AvgSavings    float64
	OverrunRate   float64
	YoYChange     float64
}

// SummaryDigest aggregates the whole dataset.
type SummaryDigest struct {
	TotalProjects    int
	TotalBudget      float64
	GlobalAvgDelay   float64
	TotalContractors int
	TotalRegions     int
}

// Reports bundles the output of one aggregation run.
type Reports struct {
	Regional []RegionalTrend
	// Contractors is the full ranked list of qualifying contractors.
	Contractors []ContractorRanking
	Annual      []AnnualMetric
	Summary     SummaryDigest
}

// TopContractors returns the first TopContractorLimit ranked contractors.
func (r *Reports) TopContractors() []ContractorRanking {
	if len(r.Contractors) <= TopContractorLimit {
		return r.Contractors
	}
	return r.Contractors[:TopContractorLimit]
}
