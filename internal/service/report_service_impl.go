package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/floodstat/floodstat/internal/analytics"
	"github.com/floodstat/floodstat/internal/db"
	"github.com/floodstat/floodstat/internal/domain"
	"github.com/floodstat/floodstat/internal/exporter"
	"github.com/floodstat/floodstat/internal/repository"
)

// Exports selects the artifacts a report run writes. CSV is required;
// Workbook and Snapshots are skipped when nil.
type Exports struct {
	CSV       *exporter.CSVExporter
	Workbook  *exporter.WorkbookExporter
	Snapshots db.UnitOfWork
}

type reportService struct {
	outputDir string
	engine    *analytics.Engine
	exports   Exports
	observer  UseCaseObserver
	now       func() time.Time
}

func NewReportService(
	outputDir string,
	engine *analytics.Engine,
	exports Exports,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		outputDir: outputDir,
		engine:    engine,
		exports:   exports,
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

func (s *reportService) Generate(ctx context.Context, ds *domain.Dataset) (res *GenerateResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"output_dir": s.outputDir}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-reports",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if ds == nil {
		return nil, ErrNoDataset
	}
	fields["source"] = ds.Source()
	fields["records"] = ds.Len()

	reports, err := s.engine.Run(ctx, ds)
	if err != nil {
		return nil, fmt.Errorf("computing reports: %w", err)
	}
	res = &GenerateResult{Reports: reports}

	if err := s.writeCSV(res); err != nil {
		return nil, err
	}

	if s.exports.Workbook != nil {
		path := s.path(exporter.WorkbookFile)
		if err := s.exports.Workbook.Write(path, reports); err != nil {
			return nil, fmt.Errorf("exporting workbook: %w", err)
		}
		res.Files = append(res.Files, path)
	}

	if s.exports.Snapshots != nil {
		run := repository.NewReportRun(ds.Source(), reports, s.now())
		err := s.exports.Snapshots.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteReportRepo(tx).SaveRun(ctx, run)
		})
		if err != nil {
			return nil, fmt.Errorf("saving report snapshot: %w", err)
		}
		res.RunID = run.ID
		fields["run_id"] = run.ID
	}

	fields["files"] = len(res.Files)
	return res, nil
}

func (s *reportService) writeCSV(res *GenerateResult) error {
	r := res.Reports
	steps := []struct {
		name  string
		file  string
		write func(path string) error
	}{
		{"regional report", exporter.RegionalFile, func(p string) error { return s.exports.CSV.WriteRegional(p, r.Regional) }},
		{"contractor ranking", exporter.ContractorFile, func(p string) error { return s.exports.CSV.WriteContractors(p, r.TopContractors()) }},
		{"annual trends", exporter.AnnualFile, func(p string) error { return s.exports.CSV.WriteAnnual(p, r.Annual) }},
		{"summary", exporter.SummaryFile, func(p string) error { return exporter.WriteSummary(p, r.Summary) }},
	}
	for _, step := range steps {
		path := s.path(step.file)
		if err := step.write(path); err != nil {
			return fmt.Errorf("exporting %s: %w", step.name, err)
		}
		res.Files = append(res.Files, path)
	}
	return nil
}

func (s *reportService) path(name string) string {
	return filepath.Join(s.outputDir, name)
}
