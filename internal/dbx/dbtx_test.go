package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/printquote/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE jobs (id TEXT PRIMARY KEY, report_key TEXT NOT NULL DEFAULT '');`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM jobs`).Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO jobs(id) VALUES ('j1'), ('j2')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 2, countRows(t, db))
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO jobs(id) VALUES ('j1')`)
		require.NoError(t, e)
		return errors.New("audit insert failed")
	})
	require.EqualError(t, err, "audit insert failed")
	require.Equal(t, 0, countRows(t, db), "job row must not outlive a failed audit")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countRows(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO jobs(id) VALUES ('j1')`)
		require.NoError(t, e)
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		t.Fatal("fn must not run")
		return nil
	})
	require.ErrorContains(t, err, "begin tx")
}

func TestExecOne(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	_, err := db.Exec(`INSERT INTO jobs(id) VALUES ('j1')`)
	require.NoError(t, err)

	require.NoError(t, ExecOne(ctx, db, `UPDATE jobs SET report_key = ? WHERE id = ?`, "reports/j1.xlsx", "j1"))

	var key string
	require.NoError(t, db.QueryRow(`SELECT report_key FROM jobs WHERE id = 'j1'`).Scan(&key))
	assert.Equal(t, "reports/j1.xlsx", key)

	err = ExecOne(ctx, db, `UPDATE jobs SET report_key = ? WHERE id = ?`, "k", "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = ExecOne(ctx, db, `UPDATE nope SET x = 1`)
	assert.ErrorContains(t, err, "db error")
}
