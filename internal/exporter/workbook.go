package exporter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/floodstat/floodstat/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetRegional    = "Regional"
	SheetContractors = "Contractors"
	SheetAnnual      = "Annual"
	SheetSummary     = "Summary"
)

// WorkbookExporter writes every report into one XLSX workbook.
type WorkbookExporter struct {
	logger *slog.Logger
}

// NewWorkbookExporter returns a WorkbookExporter. A nil logger discards output.
func NewWorkbookExporter(logger *slog.Logger) *WorkbookExporter {
	return &WorkbookExporter{logger: orDiscard(logger)}
}

// Write saves reports to path with one sheet per report. The contractor
// sheet holds the top-ranked slice only.
func (e *WorkbookExporter) Write(path string, reports *domain.Reports) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetRegional); err != nil {
		return fmt.Errorf("renaming first sheet: %w", err)
	}
	for _, name := range []string{SheetContractors, SheetAnnual, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	regional := make([][]any, len(reports.Regional))
	for i, r := range reports.Regional {
		regional[i] = []any{r.Region, r.MainIsland, r.TotalBudget, r.MedianSavings, r.AvgDelay, r.HighDelayPct, r.EfficiencyScore}
	}
	top := reports.TopContractors()
	contractors := make([][]any, len(top))
	for i, r := range top {
		contractors[i] = []any{r.Rank, r.Contractor, r.TotalCost, r.NumProjects, r.AvgDelay, r.TotalSavings, r.ReliabilityIndex, string(r.RiskFlag)}
	}
	annual := make([][]any, len(reports.Annual))
	for i, r := range reports.Annual {
		annual[i] = []any{r.FundingYear, r.TypeOfWork, r.TotalProjects, r.AvgSavings, r.OverrunRate, r.YoYChange}
	}
	s := reports.Summary
	summary := [][]any{
		{"total_projects_analyzed", s.TotalProjects},
		{"total_budget_analyzed", s.TotalBudget},
		{"global_avg_delay", s.GlobalAvgDelay},
		{"total_contractors", s.TotalContractors},
		{"total_provinces", s.TotalRegions},
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{SheetRegional, RegionalHeader, regional},
		{SheetContractors, ContractorHeader, contractors},
		{SheetAnnual, AnnualHeader, annual},
		{SheetSummary, []string{"metric", "value"}, summary},
	}
	for _, sh := range sheets {
		if err := writeSheet(f, sh.name, sh.header, sh.rows, bold); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	e.logger.Info("workbook written", "path", path, "sheets", len(sheets))
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("resolving %s header range: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("resolving %s columns: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return fmt.Errorf("sizing %s columns: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("resolving %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
