package service

import (
	"context"
	"errors"

	"github.com/floodstat/floodstat/internal/domain"
	"github.com/floodstat/floodstat/internal/importer"
)

// ErrNoDataset is returned when reports are requested before a dataset has
// been loaded.
var ErrNoDataset = errors.New("no dataset loaded")

type DatasetService interface {
	Load(ctx context.Context, path string) (*importer.LoadResult, error)
}

type ReportService interface {
	Generate(ctx context.Context, ds *domain.Dataset) (*GenerateResult, error)
}

// GenerateResult describes one completed report run.
type GenerateResult struct {
	Reports *domain.Reports
	// Files lists every artifact written, in write order.
	Files []string
	// RunID is set when the run was stored in the snapshot database.
	RunID string
}
