package exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/floodstat/floodstat/internal/domain"
)

// ErrHeaderMismatch is returned when a re-imported file does not start with
// the expected report header.
var ErrHeaderMismatch = errors.New("unexpected report header")

// CSVExporter writes report rows as CSV files.
type CSVExporter struct {
	logger *slog.Logger
}

// NewCSVExporter returns a CSVExporter. A nil logger discards output.
func NewCSVExporter(logger *slog.Logger) *CSVExporter {
	return &CSVExporter{logger: orDiscard(logger)}
}

// WriteRegional writes the regional report to path.
func (e *CSVExporter) WriteRegional(path string, rows []domain.RegionalTrend) error {
	return writeRows(e.logger, path, regionalCodec, rows)
}

// WriteContractors writes the contractor ranking to path. Callers pass the
// slice they want exported, normally Reports.TopContractors.
func (e *CSVExporter) WriteContractors(path string, rows []domain.ContractorRanking) error {
	return writeRows(e.logger, path, contractorCodec, rows)
}

// WriteAnnual writes the annual trends report to path.
func (e *CSVExporter) WriteAnnual(path string, rows []domain.AnnualMetric) error {
	return writeRows(e.logger, path, annualCodec, rows)
}

// ReadRegional re-imports a file written by WriteRegional.
func ReadRegional(path string) ([]domain.RegionalTrend, error) {
	return readRows(path, regionalCodec)
}

// ReadContractors re-imports a file written by WriteContractors.
func ReadContractors(path string) ([]domain.ContractorRanking, error) {
	return readRows(path, contractorCodec)
}

// ReadAnnual re-imports a file written by WriteAnnual.
func ReadAnnual(path string) ([]domain.AnnualMetric, error) {
	return readRows(path, annualCodec)
}

func writeRows[T any](logger *slog.Logger, path string, c codec[T], rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(c.header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := w.Write(c.encode(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	logger.Info("report written", "path", path, "rows", len(rows))
	return nil
}

func readRows[T any](path string, c codec[T]) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(c.header)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !slices.Equal(header, c.header) {
		return nil, fmt.Errorf("%w: got %v", ErrHeaderMismatch, header)
	}

	var out []T
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		fr := &fieldReader{header: c.header, record: record}
		row := c.decode(fr)
		if fr.err != nil {
			return nil, fmt.Errorf("decoding line %d: %w", line, fr.err)
		}
		out = append(out, row)
	}
	return out, nil
}
