package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/floodstat/floodstat/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO report_runs VALUES (?, '2024-01-01T00:00:00Z', 'test.csv', 0, 0, 0, 0, 0)`, id)
	return err
}

func countRuns(t *testing.T, uow *db.SQLiteUnitOfWork, id string) int {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM report_runs WHERE id = ?`, id).Scan(&n)
	})
	require.NoError(t, err)
	return n
}

func openUnitOfWork(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func TestWithinTx_Commits(t *testing.T) {
	uow := openUnitOfWork(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return newRun(ctx, tx, "run-1")
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countRuns(t, uow, "run-1"))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	uow := openUnitOfWork(t)
	boom := errors.New("export failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := newRun(ctx, tx, "run-2"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 0, countRuns(t, uow, "run-2"))
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	uow := openUnitOfWork(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = newRun(ctx, tx, "run-3")
			panic("boom")
		})
	})

	assert.Equal(t, 0, countRuns(t, uow, "run-3"))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	uow := openUnitOfWork(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
