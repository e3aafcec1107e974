package service

import (
	"context"
	"fmt"
	"time"

	"github.com/floodstat/floodstat/internal/importer"
)

type datasetService struct {
	loader   *importer.Loader
	observer UseCaseObserver
}

func NewDatasetService(loader *importer.Loader, observers ...UseCaseObserver) DatasetService {
	return &datasetService{
		loader:   loader,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *datasetService) Load(ctx context.Context, path string) (res *importer.LoadResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load-dataset",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	res, err = s.loader.LoadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	fields["total_rows"] = res.TotalRows
	fields["kept"] = res.Kept()
	fields["filtered"] = res.Filtered
	fields["failed"] = res.Failed
	return res, nil
}
