package db

import (
	"database/sql"
	"fmt"
)

// schemaVersion is stored in PRAGMA user_version after a successful run.
const schemaVersion = 1

// Migrate creates the snapshot tables. Every statement is idempotent so it
// is safe to run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return nil
}

// SchemaVersion reads the version recorded by Migrate.
func SchemaVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS report_runs (
		id                TEXT PRIMARY KEY,
		created_at        TEXT NOT NULL,
		source            TEXT NOT NULL,
		total_projects    INTEGER NOT NULL,
		total_budget      REAL NOT NULL,
		global_avg_delay  REAL NOT NULL,
		total_contractors INTEGER NOT NULL,
		total_regions     INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS regional_trends (
		run_id           TEXT NOT NULL REFERENCES report_runs(id) ON DELETE CASCADE,
		position         INTEGER NOT NULL,
		region           TEXT NOT NULL,
		main_island      TEXT NOT NULL,
		total_budget     REAL NOT NULL,
		median_savings   REAL NOT NULL,
		avg_delay        REAL NOT NULL,
		high_delay_pct   REAL NOT NULL,
		efficiency_score REAL NOT NULL CHECK(efficiency_score BETWEEN 0 AND 100),
		PRIMARY KEY (run_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS contractor_rankings (
		run_id            TEXT NOT NULL REFERENCES report_runs(id) ON DELETE CASCADE,
		rank              INTEGER NOT NULL,
		contractor        TEXT NOT NULL,
		total_cost        REAL NOT NULL,
		num_projects      INTEGER NOT NULL,
		avg_delay         REAL NOT NULL,
		total_savings     REAL NOT NULL,
		reliability_index REAL NOT NULL CHECK(reliability_index <= 100),
		risk_flag         TEXT NOT NULL CHECK(risk_flag IN ('High Risk','Low Risk')),
		PRIMARY KEY (run_id, rank)
	)`,
	`CREATE TABLE IF NOT EXISTS annual_metrics (
		run_id         TEXT NOT NULL REFERENCES report_runs(id) ON DELETE CASCADE,
		position       INTEGER NOT NULL,
		funding_year   INTEGER NOT NULL,
		type_of_work   TEXT NOT NULL,
		total_projects INTEGER NOT NULL,
		avg_savings    REAL NOT NULL,
		overrun_rate   REAL NOT NULL,
		yoy_change     REAL NOT NULL,
		PRIMARY KEY (run_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_report_runs_created ON report_runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_annual_metrics_year ON annual_metrics(run_id, funding_year)`,
}
