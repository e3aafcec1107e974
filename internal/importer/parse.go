package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/floodstat/floodstat/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// RowOutcome is the result class of parsing one row.
type RowOutcome int

const (
	RowKept RowOutcome = iota
	// RowFiltered means the row was rejected by a filter rule (blank field,
	// funding year outside the window). It is not an error.
	RowFiltered
	// RowFailed means a required field could not be parsed.
	RowFailed
)

func (o RowOutcome) String() string {
	switch o {
	case RowKept:
		return "kept"
	case RowFiltered:
		return "filtered"
	case RowFailed:
		return "failed"
	default:
		return fmt.Sprintf("RowOutcome(%d)", int(o))
	}
}

// ParseRow turns one raw row into a ProjectRecord. Exactly one of the three
// outcomes is returned; the error is non-nil only for RowFailed.
func ParseRow(row []string, layout ColumnLayout) (domain.ProjectRecord, RowOutcome, error) {
	for _, field := range row {
		if strings.TrimSpace(field) == "" {
			return domain.ProjectRecord{}, RowFiltered, nil
		}
	}

	yearRaw, ok := column(row, layout.FundingYear)
	if !ok {
		return domain.ProjectRecord{}, RowFailed, fmt.Errorf("%w: funding year (col %d)", ErrMissingColumn, layout.FundingYear)
	}
	year, err := strconv.Atoi(yearRaw)
	if err != nil {
		return domain.ProjectRecord{}, RowFailed, fmt.Errorf("%w %q", ErrInvalidYear, yearRaw)
	}
	if !domain.InFundingWindow(year) {
		return domain.ProjectRecord{}, RowFiltered, nil
	}

	approved, err := requiredAmount(row, layout.ApprovedBudget, "approved budget")
	if err != nil {
		return domain.ProjectRecord{}, RowFailed, err
	}
	cost, err := requiredAmount(row, layout.ContractCost, "contract cost")
	if err != nil {
		return domain.ProjectRecord{}, RowFailed, err
	}

	rec := domain.NewProjectRecord(domain.ProjectFields{
		MainIsland:     optional(row, layout.MainIsland),
		Region:         optional(row, layout.Region),
		TypeOfWork:     optional(row, layout.TypeOfWork),
		Contractor:     optional(row, layout.Contractor),
		FundingYear:    year,
		ApprovedBudget: approved,
		ContractCost:   cost,
		StartDate:      parseDate(optional(row, layout.StartDate)),
		EndDate:        parseDate(optional(row, layout.EndDate)),
	})
	return rec, RowKept, nil
}

// column returns the trimmed value at idx and whether the row has that column.
func column(row []string, idx int) (string, bool) {
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[idx]), true
}

func optional(row []string, idx int) string {
	v, _ := column(row, idx)
	return v
}

func requiredAmount(row []string, idx int, name string) (float64, error) {
	raw, ok := column(row, idx)
	if !ok {
		return 0, fmt.Errorf("%w: %s (col %d)", ErrMissingColumn, name, idx)
	}
	v, err := ParseAmount(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// ParseAmount parses a money value after trimming and removing thousands
// separators. Negative values are rejected.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidAmount, raw)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w %q: must not be negative", ErrInvalidAmount, raw)
	}
	return d.InexactFloat64(), nil
}

// parseDate accepts DateLayout text or an Excel date serial. It returns
// nil for empty or unparseable input.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return &t
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || serial <= 0 {
		return nil
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return nil
	}
	return &t
}
