package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/floodstat/floodstat/internal/domain"
)

// LoadResult summarizes one pass over a row source.
type LoadResult struct {
	Dataset   *domain.Dataset
	TotalRows int
	Filtered  int
	Failed    int
	// Issues holds one entry per failed row, in row order.
	Issues []*RowError
}

// Kept returns the number of records in the dataset.
func (r *LoadResult) Kept() int { return r.Dataset.Len() }

// Skipped returns filtered plus failed rows.
func (r *LoadResult) Skipped() int { return r.Filtered + r.Failed }

// Loader drives ParseRow over every row of a source.
type Loader struct {
	layout ColumnLayout
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLayout overrides the default column layout.
func WithLayout(layout ColumnLayout) LoaderOption {
	return func(l *Loader) { l.layout = layout }
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Loader{layout: DefaultLayout(), logger: logger}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile opens path and loads every row from it.
func (l *Loader) LoadFile(ctx context.Context, path string) (*LoadResult, error) {
	src, err := OpenSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return l.Load(ctx, path, src)
}

// Load reads src to exhaustion. Per-row problems are counted and recorded
// in the result; only a read failure of the source itself is returned.
func (l *Loader) Load(ctx context.Context, name string, src RowSource) (*LoadResult, error) {
	res := &LoadResult{}
	var records []domain.ProjectRecord

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		res.TotalRows++
		rowNum := res.TotalRows

		if err != nil {
			if !errors.Is(err, ErrMalformedRow) {
				return nil, fmt.Errorf("reading row %d: %w", rowNum, err)
			}
			l.fail(ctx, res, rowNum, err)
			continue
		}

		rec, outcome, err := ParseRow(row, l.layout)
		switch outcome {
		case RowKept:
			records = append(records, rec)
		case RowFiltered:
			res.Filtered++
			l.logger.DebugContext(ctx, "row filtered", "row", rowNum)
		case RowFailed:
			l.fail(ctx, res, rowNum, err)
		}
	}

	res.Dataset = domain.NewDataset(name, records)
	l.logger.InfoContext(ctx, "dataset loaded",
		"source", name,
		"total_rows", res.TotalRows,
		"kept", res.Kept(),
		"filtered", res.Filtered,
		"failed", res.Failed,
	)
	return res, nil
}

func (l *Loader) fail(ctx context.Context, res *LoadResult, row int, err error) {
	res.Failed++
	rowErr := &RowError{Row: row, Err: err}
	res.Issues = append(res.Issues, rowErr)
	l.logger.WarnContext(ctx, "skipping row due to parsing error", "row", row, "error", err.Error())
}
