package testutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/floodstat/floodstat/internal/domain"
)

// DatasetHeader mirrors the 17 columns of the DPWH flood control export.
var DatasetHeader = []string{
	"MainIsland", "Region", "Province", "LegislativeDistrict", "Municipality",
	"DistrictEngineeringOffice", "ProjectId", "ProjectName", "TypeOfWork",
	"FundingYear", "ContractId", "ApprovedBudgetForContract", "ContractCost",
	"ActualCompletionDate", "Contractor", "InfraYear", "StartDate",
}

// RowOption mutates a raw dataset row.
type RowOption func(row []string)

func WithCol(idx int, v string) RowOption {
	return func(row []string) { row[idx] = v }
}

func WithRegion(region, island string) RowOption {
	return func(row []string) {
		row[1] = region
		row[0] = island
	}
}

func WithYear(y int) RowOption {
	return func(row []string) { row[9] = fmt.Sprint(y) }
}

func WithAmounts(budget, cost string) RowOption {
	return func(row []string) {
		row[11] = budget
		row[12] = cost
	}
}

func WithDates(start, end string) RowOption {
	return func(row []string) {
		row[16] = start
		row[13] = end
	}
}

func WithContractor(name string) RowOption {
	return func(row []string) { row[14] = name }
}

func WithTypeOfWork(tw string) RowOption {
	return func(row []string) { row[8] = tw }
}

// NewRow returns a valid 17-column row (year 2022, budget 1,000,000,
// cost 900,000, 40 day delay) with opts applied.
func NewRow(opts ...RowOption) []string {
	row := []string{
		"Luzon", "Region I", "Ilocos Norte", "1st District", "Laoag City",
		"Ilocos Norte 1st DEO", "P00001", "Flood Control Structure",
		"Construction of Flood Mitigation Structure", "2022", "C00001",
		"1,000,000.00", "900,000.00", "2022-02-10", "Acme Builders", "2022",
		"2022-01-01",
	}
	for _, opt := range opts {
		opt(row)
	}
	return row
}

// WriteCSV writes the dataset header followed by rows into dir and returns
// the file path.
func WriteCSV(t *testing.T, dir string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(dir, "dataset.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture csv: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(DatasetHeader); err != nil {
		t.Fatalf("writing fixture header: %v", err)
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("writing fixture rows: %v", err)
	}
	return path
}

// RecordOption mutates a ProjectFields before the record is built.
type RecordOption func(*domain.ProjectFields)

func InRegion(region, island string) RecordOption {
	return func(f *domain.ProjectFields) {
		f.Region = region
		f.MainIsland = island
	}
}

func ByContractor(name string) RecordOption {
	return func(f *domain.ProjectFields) { f.Contractor = name }
}

func InYear(y int, typeOfWork string) RecordOption {
	return func(f *domain.ProjectFields) {
		f.FundingYear = y
		f.TypeOfWork = typeOfWork
	}
}

func Costing(budget, cost float64) RecordOption {
	return func(f *domain.ProjectFields) {
		f.ApprovedBudget = budget
		f.ContractCost = cost
	}
}

// Delayed sets start and end dates days apart.
func Delayed(days int) RecordOption {
	return func(f *domain.ProjectFields) {
		start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, days)
		f.StartDate = &start
		f.EndDate = &end
	}
}

// NoDelay clears both dates.
func NoDelay() RecordOption {
	return func(f *domain.ProjectFields) {
		f.StartDate = nil
		f.EndDate = nil
	}
}

// NewTestRecord builds a record in Region I / Luzon, 2022, budget 1000,
// cost 900, 10 day delay, with opts applied.
func NewTestRecord(opts ...RecordOption) domain.ProjectRecord {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)
	f := domain.ProjectFields{
		Region:         "Region I",
		MainIsland:     "Luzon",
		Contractor:     "Acme Builders",
		FundingYear:    2022,
		TypeOfWork:     "Construction of Flood Mitigation Structure",
		ApprovedBudget: 1000,
		ContractCost:   900,
		StartDate:      &start,
		EndDate:        &end,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return domain.NewProjectRecord(f)
}
