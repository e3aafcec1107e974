package domain

import "time"

// ProjectRecord is one validated row of the flood-control dataset.
// Build it with NewProjectRecord so CostSavings stays consistent.
type ProjectRecord struct {
	Region         string
	MainIsland     string
	Contractor     string
	FundingYear    int
	TypeOfWork     string
	ApprovedBudget float64
	ContractCost   float64
	// CostSavings is ApprovedBudget - ContractCost. Negative means an overrun.
	CostSavings float64
	// CompletionDelayDays is nil when either the start or end date was
	// missing or unparseable.
	CompletionDelayDays *int
}

// ProjectFields carries the parsed inputs for NewProjectRecord.
type ProjectFields struct {
	Region         string
	MainIsland     string
	Contractor     string
	FundingYear    int
	TypeOfWork     string
	ApprovedBudget float64
	ContractCost   float64
	StartDate      *time.Time
	EndDate        *time.Time
}

// NewProjectRecord derives cost savings and completion delay from f.
func NewProjectRecord(f ProjectFields) ProjectRecord {
	r := ProjectRecord{
		Region:         f.Region,
		MainIsland:     f.MainIsland,
		Contractor:     f.Contractor,
		FundingYear:    f.FundingYear,
		TypeOfWork:     f.TypeOfWork,
		ApprovedBudget: f.ApprovedBudget,
		ContractCost:   f.ContractCost,
		CostSavings:    f.ApprovedBudget - f.ContractCost,
	}
	if f.StartDate != nil && f.EndDate != nil {
		days := DaysBetween(*f.StartDate, *f.EndDate)
		r.CompletionDelayDays = &days
	}
	return r
}

// Delay returns the completion delay and whether it is known.
func (r ProjectRecord) Delay() (int, bool) {
	if r.CompletionDelayDays == nil {
		return 0, false
	}
	return *r.CompletionDelayDays, true
}

// IsOverrun reports whether the contract cost exceeds the approved budget.
func (r ProjectRecord) IsOverrun() bool {
	return r.ContractCost > r.ApprovedBudget
}

// DaysBetween returns end - start in whole calendar days. The result is
// negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int((e.Unix() - s.Unix()) / 86400)
}
