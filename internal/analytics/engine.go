package analytics

import (
	"context"
	"io"
	"log/slog"

	"github.com/floodstat/floodstat/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Engine runs the aggregation passes over a loaded dataset.
type Engine struct {
	logger *slog.Logger
}

// NewEngine returns an Engine. A nil logger discards output.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{logger: logger}
}

// Run computes every report for ds. The regional, contractor and annual
// passes only read the record slice, so they run concurrently; the summary
// waits for the contractor list.
func (e *Engine) Run(ctx context.Context, ds *domain.Dataset) (*domain.Reports, error) {
	records := ds.Records()
	out := &domain.Reports{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Regional = RegionalTrends(records)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Contractors = ContractorRankings(records)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Annual = AnnualPerformance(records)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Summary = Summarize(records, out.Contractors)

	e.logger.Info("reports computed",
		"records", len(records),
		"regions", len(out.Regional),
		"contractors", len(out.Contractors),
		"annual_rows", len(out.Annual),
	)
	return out, nil
}
