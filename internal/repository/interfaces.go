package repository

import "context"

// ReportSnapshotRepo persists completed report runs.
type ReportSnapshotRepo interface {
	SaveRun(ctx context.Context, run *ReportRun) error
}
