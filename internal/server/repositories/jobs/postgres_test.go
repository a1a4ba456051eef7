package jobs

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/classify"
	"github.com/dmitrijs2005/printquote/internal/common"
	"github.com/dmitrijs2005/printquote/internal/materials"
	"github.com/dmitrijs2005/printquote/internal/printspec"
	"github.com/dmitrijs2005/printquote/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate_FillsCreatedAt(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO jobs .* RETURNING created_at`).
		WithArgs("j1", "desk", "job.zip", "abc", "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	job := &models.Job{ID: "j1", Client: "desk", ArchiveName: "job.zip", Fingerprint: "abc"}
	require.NoError(t, repo.Create(context.Background(), job))
	assert.Equal(t, created, job.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO jobs`).WillReturnError(errors.New("db is down"))

	err := repo.Create(context.Background(), &models.Job{ID: "j1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert job: db is down")
}

func TestAddFolders_InOrder(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	var sleeves materials.Tally
	sleeves.Add(materials.Sleeve, 2)

	mock.ExpectExec(`INSERT INTO job_folders`).
		WithArgs("j1", 0, "JobA", 5, 0, []byte(`{"sleeve":2}`), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO job_folders`).
		WithArgs("j1", 1, "JobB", 0, 3, []byte(`{}`), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddFolders(context.Background(), "j1", []aggregate.FolderSummary{
		{Folder: "JobA", MonoSheets: 5, Materials: sleeves, Files: 1},
		{Folder: "JobB", ColorSheets: 3, Files: 2},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddAudit_StopsOnError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO job_audit`).
		WithArgs("j1", 0, "JobA", "JobA/a.pdf", "a.pdf", "monochrome-print",
			sqlmock.AnyArg(), 20, 5, "(20 ÷ 4) → 5 × 1", []byte(`{}`), "").
		WillReturnError(errors.New("constraint"))

	err := repo.AddAudit(context.Background(), "j1", []aggregate.AuditRecord{
		{Folder: "JobA", Path: "JobA/a.pdf", Filename: "a.pdf", Category: classify.MonochromePrint,
			Spec: printspec.PrintSpec{LayoutDivisor: 4, Copies: 1, Duplex: true}, RawCount: 20, FinalCount: 5,
			Formula: "(20 ÷ 4) → 5 × 1"},
		{Folder: "JobA", Path: "JobA/b.pdf"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JobA/a.pdf")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetReportKey(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE jobs SET report_key`).WithArgs("j1", "reports/j1.xlsx").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE jobs SET report_key`).WithArgs("nope", "k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE jobs SET report_key`).WithArgs("j2", "k").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))

	require.NoError(t, repo.SetReportKey(context.Background(), "j1", "reports/j1.xlsx"))
	assert.ErrorIs(t, repo.SetReportKey(context.Background(), "nope", "k"), common.ErrorNotFound)
	assert.ErrorContains(t, repo.SetReportKey(context.Background(), "j2", "k"), "rows affected error")
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, client, archive_name, fingerprint, report_key, created_at FROM jobs`).
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client", "archive_name", "fingerprint", "report_key", "created_at"}).
			AddRow("j1", "desk", "job.zip", "abc", "reports/j1.xlsx", created))
	mock.ExpectQuery(`SELECT .* FROM jobs`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	job, err := repo.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, &models.Job{ID: "j1", Client: "desk", ArchiveName: "job.zip", Fingerprint: "abc",
		ReportKey: "reports/j1.xlsx", CreatedAt: created}, job)

	_, err = repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFoldersAndAudit_Decode(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT folder, mono_sheets, color_sheets, materials, files\s+FROM job_folders`).
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows([]string{"folder", "mono_sheets", "color_sheets", "materials", "files"}).
			AddRow("JobA", 5, 0, []byte(`{"sleeve":2}`), 1))
	mock.ExpectQuery(`FROM job_audit`).
		WithArgs("j1").
		WillReturnRows(sqlmock.NewRows([]string{"folder", "path", "filename", "category", "spec",
			"raw_count", "final_count", "formula", "materials", "note"}).
			AddRow("JobA", "JobA/a.pdf", "a.pdf", "color-print",
				[]byte(`{"layout_divisor":2,"copies":3,"color":true,"duplex":false}`),
				29, 45, "(29 ÷ 2) → 15 × 3", []byte(`{"special-item":1}`), ""))

	folders, err := repo.Folders(context.Background(), "j1")
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, 2, folders[0].Materials.Get(materials.Sleeve))

	audit, err := repo.Audit(context.Background(), "j1")
	require.NoError(t, err)
	require.Len(t, audit, 1)
	assert.Equal(t, classify.ColorPrint, audit[0].Category)
	assert.Equal(t, printspec.PrintSpec{LayoutDivisor: 2, Copies: 3, Color: true}, audit[0].Spec)
	assert.Equal(t, 1, audit[0].Materials.Get(materials.SpecialItem))
}

func TestAudit_BadCategory(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM job_audit`).
		WillReturnRows(sqlmock.NewRows([]string{"folder", "path", "filename", "category", "spec",
			"raw_count", "final_count", "formula", "materials", "note"}).
			AddRow("JobA", "JobA/a.pdf", "a.pdf", "poster", []byte(`{}`), 1, 1, "", []byte(`{}`), ""))

	_, err := repo.Audit(context.Background(), "j1")
	assert.ErrorContains(t, err, "JobA/a.pdf")
}
