package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// Scratch table outside the migration set.
	_, err = database.Exec(`CREATE TABLE IF NOT EXISTS tx_scratch (id TEXT PRIMARY KEY, val TEXT)`)
	require.NoError(t, err)

	return db.NewSQLiteUnitOfWork(database)
}

func scratchVal(uow *db.SQLiteUnitOfWork, id string) (string, bool) {
	var val string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT val FROM tx_scratch WHERE id = ?`, id)
		if err := row.Scan(&val); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return val, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO tx_scratch (id, val) VALUES (?, ?)`, "a", "committed")
		return err
	})
	require.NoError(t, err)

	val, found := scratchVal(uow, "a")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "committed", val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO tx_scratch (id, val) VALUES (?, ?)`, "b", "doomed"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := scratchVal(uow, "b")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO tx_scratch (id, val) VALUES (?, ?)`, "c", "boom")
			panic("boom")
		})
	})

	_, found := scratchVal(uow, "c")
	assert.False(t, found, "row should not exist after panic rollback")
}
