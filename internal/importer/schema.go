package importer

// ColumnLayout holds the zero-based column positions of the fields the
// parser reads. Other columns are only checked by the blank-field gate.
type ColumnLayout struct {
	MainIsland     int
	Region         int
	TypeOfWork     int
	FundingYear    int
	ApprovedBudget int
	ContractCost   int
	EndDate        int
	Contractor     int
	StartDate      int
}

// DefaultLayout returns the positions used by the DPWH flood control export.
func DefaultLayout() ColumnLayout {
	return ColumnLayout{
		MainIsland:     0,
		Region:         1,
		TypeOfWork:     8,
		FundingYear:    9,
		ApprovedBudget: 11,
		ContractCost:   12,
		EndDate:        13,
		Contractor:     14,
		StartDate:      16,
	}
}
