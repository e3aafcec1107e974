package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/floodstat/floodstat/internal/db"
)

// timestampLayout is how run timestamps are stored.
const timestampLayout = time.RFC3339Nano

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// insertEach prepares query once and executes it with args(i) for every
// index in [0, n).
func insertEach(ctx context.Context, tx db.DBTX, table, query string, n int, args func(i int) []any) error {
	if n == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("inserting %s row %d: %w", table, i+1, err)
		}
	}
	return nil
}
