package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/floodstat/floodstat/internal/db"
	"github.com/floodstat/floodstat/internal/domain"
	"github.com/google/uuid"
)

// ReportRun is one generated set of reports ready to be persisted.
type ReportRun struct {
	ID        string
	CreatedAt time.Time
	Source    string
	Reports   *domain.Reports
}

// NewReportRun stamps reports with a fresh run id.
func NewReportRun(source string, reports *domain.Reports, now time.Time) *ReportRun {
	return &ReportRun{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Source:    source,
		Reports:   reports,
	}
}

// SQLiteReportRepo implements ReportSnapshotRepo. Run it against the tx
// handed out by db.UnitOfWork so a run is stored all or nothing.
type SQLiteReportRepo struct {
	db db.DBTX
}

func NewSQLiteReportRepo(db db.DBTX) *SQLiteReportRepo {
	return &SQLiteReportRepo{db: db}
}

// SaveRun inserts the run row followed by every report row. The full
// contractor ranking is stored, not only the exported top slice.
func (r *SQLiteReportRepo) SaveRun(ctx context.Context, run *ReportRun) error {
	s := run.Reports.Summary
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO report_runs (id, created_at, source, total_projects, total_budget, global_avg_delay, total_contractors, total_regions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		formatTimestamp(run.CreatedAt),
		run.Source,
		s.TotalProjects,
		s.TotalBudget,
		s.GlobalAvgDelay,
		s.TotalContractors,
		s.TotalRegions,
	)
	if err != nil {
		return fmt.Errorf("inserting report run: %w", err)
	}

	regional := run.Reports.Regional
	if err := insertEach(ctx, r.db, "regional_trends",
		`INSERT INTO regional_trends (run_id, position, region, main_island, total_budget, median_savings, avg_delay, high_delay_pct, efficiency_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(regional), func(i int) []any {
			t := regional[i]
			return []any{run.ID, i, t.Region, t.MainIsland, t.TotalBudget, t.MedianSavings, t.AvgDelay, t.HighDelayPct, t.EfficiencyScore}
		}); err != nil {
		return err
	}

	contractors := run.Reports.Contractors
	if err := insertEach(ctx, r.db, "contractor_rankings",
		`INSERT INTO contractor_rankings (run_id, rank, contractor, total_cost, num_projects, avg_delay, total_savings, reliability_index, risk_flag)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(contractors), func(i int) []any {
			c := contractors[i]
			return []any{run.ID, c.Rank, c.Contractor, c.TotalCost, c.NumProjects, c.AvgDelay, c.TotalSavings, c.ReliabilityIndex, string(c.RiskFlag)}
		}); err != nil {
		return err
	}

	annual := run.Reports.Annual
	return insertEach(ctx, r.db, "annual_metrics",
		`INSERT INTO annual_metrics (run_id, position, funding_year, type_of_work, total_projects, avg_savings, overrun_rate, yoy_change)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		len(annual), func(i int) []any {
			m := annual[i]
			return []any{run.ID, i, m.FundingYear, m.TypeOfWork, m.TotalProjects, m.AvgSavings, m.OverrunRate, m.YoYChange}
		})
}
